package http

import (
	"github.com/GaluhWikri/Portofolio-Galuh/internal/domain/portfolio"
)

// Portfolio document DTOs. The JSON shape is the contract with the dashboard
// and the landing page; field names must not drift.

type EducationDTO struct {
	University string `json:"university"`
	Major      string `json:"major"`
	Period     string `json:"period"`
}

type ToolDTO struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type ProjectDTO struct {
	ID     int64    `json:"id,omitempty"`
	Title  string   `json:"title"`
	Tech   []string `json:"tech"`
	ImgSrc string   `json:"imgSrc"`
}

type PortfolioDocumentDTO struct {
	AboutMe   string       `json:"aboutMe"`
	Education EducationDTO `json:"education"`
	Tools     []ToolDTO    `json:"tools"`
	Projects  []ProjectDTO `json:"projects"`
}

func (d *PortfolioDocumentDTO) ToDomain() *portfolio.Document {
	doc := &portfolio.Document{
		AboutMe: d.AboutMe,
		Education: portfolio.Education{
			University: d.Education.University,
			Major:      d.Education.Major,
			Period:     d.Education.Period,
		},
		Tools:    make([]portfolio.Tool, 0, len(d.Tools)),
		Projects: make([]portfolio.Project, 0, len(d.Projects)),
	}
	for _, t := range d.Tools {
		doc.Tools = append(doc.Tools, portfolio.Tool{ID: t.ID, Name: t.Name, Icon: t.Icon})
	}
	for _, p := range d.Projects {
		doc.Projects = append(doc.Projects, portfolio.Project{ID: p.ID, Title: p.Title, Tech: p.Tech, ImgSrc: p.ImgSrc})
	}
	doc.Normalize()
	return doc
}

func ToPortfolioDocumentDTO(doc *portfolio.Document) PortfolioDocumentDTO {
	dto := PortfolioDocumentDTO{
		AboutMe: doc.AboutMe,
		Education: EducationDTO{
			University: doc.Education.University,
			Major:      doc.Education.Major,
			Period:     doc.Education.Period,
		},
		Tools:    make([]ToolDTO, 0, len(doc.Tools)),
		Projects: make([]ProjectDTO, 0, len(doc.Projects)),
	}
	for _, t := range doc.Tools {
		dto.Tools = append(dto.Tools, ToolDTO{ID: t.ID, Name: t.Name, Icon: t.Icon})
	}
	for _, p := range doc.Projects {
		tech := p.Tech
		if tech == nil {
			tech = []string{}
		}
		dto.Projects = append(dto.Projects, ProjectDTO{ID: p.ID, Title: p.Title, Tech: tech, ImgSrc: p.ImgSrc})
	}
	return dto
}

type UploadResponse struct {
	Success bool   `json:"success"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message,omitempty"`
}

type IconsResponse struct {
	Icons []string `json:"icons"`
}
