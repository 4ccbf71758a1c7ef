package model

import (
	"time"
)

const (
	DefaultProjectStatus = "active"
	DefaultUpdateStatus  = "submitted"
)

// TimestampLayout is used for createdate and lastModified.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// ProgressUpdate is a unit of reported work. It only exists embedded in a Project.
type ProgressUpdate struct {
	UpdateID       string    `json:"updateId"`
	ProjectCode    string    `json:"projectCode"`
	SectionID      string    `json:"sectionId"`
	ItemCode       string    `json:"itemCode"`
	Date           DateTime  `json:"date"`
	SupervisorID   string    `json:"supervisorId"`
	SupervisorName *string   `json:"supervisorName"`
	WorkDoneQty    float64   `json:"workDoneQty"`
	Unit           *string   `json:"unit"`
	Remarks        *string   `json:"remarks"`
	VerifiedBy     *string   `json:"verifiedBy"`
	Attachments    []string  `json:"attachments"`
	Status         string    `json:"status"`
}

// Project is the persisted project document. Sections and Totals are opaque
// JSON supplied by the client. Request validation lives on the handler's
// request types.
type Project struct {
	Title               string           `json:"title"`
	Location            string           `json:"location"`
	Supervisors         []string         `json:"supervisors"`
	ProjectCode         string           `json:"projectCode"`
	Description         *string          `json:"description"`
	TotalLabourCost     *string          `json:"totalLabourCost"`
	AverageLabourCost   *string          `json:"averageLabourCost"`
	NumberOfSupervisors *string          `json:"numberOfSupervisors"`
	NumberOfLabours     *string          `json:"numberOfLabours"`
	TotalCTC            *string          `json:"totalCTC"`
	Sections            []any            `json:"sections"`
	Totals              map[string]any   `json:"totals"`
	CreateDate          string           `json:"createdate"`
	LastModified        *string          `json:"lastModified"`
	Status              string           `json:"status"`
	CompletedCost       float64          `json:"completedCost"`
	ProgressUpdates     []ProgressUpdate `json:"progressUpdates"`
}

// ApplyDefaults fills the fields that carry a default value when omitted.
func (p *Project) ApplyDefaults() {
	if p.Status == "" {
		p.Status = DefaultProjectStatus
	}
	if p.ProgressUpdates == nil {
		p.ProgressUpdates = []ProgressUpdate{}
	}
	for i := range p.ProgressUpdates {
		if p.ProgressUpdates[i].Status == "" {
			p.ProgressUpdates[i].Status = DefaultUpdateStatus
		}
	}
}

// Touch sets lastModified to t.
func (p *Project) Touch(t time.Time) {
	ts := t.Format(TimestampLayout)
	p.LastModified = &ts
}

// StoredProject is a project as read back from disk, tagged with its file name.
type StoredProject struct {
	Project
	File string `json:"__file"`
}

// ViewerProject is a project decorated for listing. SupervisorsFirstNames is
// parallel to Supervisors and never persisted.
type ViewerProject struct {
	Project
	SupervisorsFirstNames []string `json:"supervisors_first_names"`
}
