package portfolio

import (
	"context"
	"strings"
)

// Settings table keys. Fixed set, seeded out-of-band, update-only at runtime.
const (
	SettingAboutMe             = "aboutMe"
	SettingEducationUniversity = "education_university"
	SettingEducationMajor      = "education_major"
	SettingEducationPeriod     = "education_period"
)

// ImageStorage selects how tool icons and project images are persisted in
// database mode: as public filesystem paths or as raw bytes in the row.
type ImageStorage string

const (
	ImageStoragePath   ImageStorage = "path"
	ImageStorageInline ImageStorage = "inline"
)

type Education struct {
	University string `json:"university"`
	Major      string `json:"major"`
	Period     string `json:"period"`
}

// Tool carries an optional id: zero means not yet persisted (pending insert).
type Tool struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type Project struct {
	ID     int64    `json:"id,omitempty"`
	Title  string   `json:"title"`
	Tech   []string `json:"tech"`
	ImgSrc string   `json:"imgSrc"`
}

// Document is the read/write unit exchanged with the dashboard. It is never
// persisted as a unit in database mode; it is assembled from and decomposed
// into settings rows plus the tools and projects tables on every request.
type Document struct {
	AboutMe   string    `json:"aboutMe"`
	Education Education `json:"education"`
	Tools     []Tool    `json:"tools"`
	Projects  []Project `json:"projects"`
}

// Normalize replaces nil slices so an empty store serializes as [] not null.
func (d *Document) Normalize() {
	if d.Tools == nil {
		d.Tools = []Tool{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	for i := range d.Projects {
		if d.Projects[i].Tech == nil {
			d.Projects[i].Tech = []string{}
		}
	}
}

type Repository interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}

const techDelimiter = ", "

// JoinTech flattens a tech tag list into the single comma-delimited string
// stored in the projects table.
func JoinTech(tags []string) string {
	return strings.Join(tags, techDelimiter)
}

// SplitTech is the inverse of JoinTech: split on comma, trim whitespace,
// drop empties. An empty string yields an empty slice.
func SplitTech(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func (t Tool) ItemID() int64    { return t.ID }
func (p Project) ItemID() int64 { return p.ID }

// SubmittedIDs collects the positive ids present in a submitted collection.
// Items without an id are pending inserts and contribute nothing.
func SubmittedIDs[T interface{ ItemID() int64 }](items []T) map[int64]bool {
	ids := make(map[int64]bool, len(items))
	for _, it := range items {
		if id := it.ItemID(); id > 0 {
			ids[id] = true
		}
	}
	return ids
}

// IDsToDelete returns the persisted ids absent from the submission, in the
// order the store returned them. After a save the set of persisted ids must
// equal exactly the set of submitted ids.
func IDsToDelete(existing []int64, submitted map[int64]bool) []int64 {
	var doomed []int64
	for _, id := range existing {
		if !submitted[id] {
			doomed = append(doomed, id)
		}
	}
	return doomed
}
