package types

import (
	"fmt"
	"strings"
	"time"
)

// SciencePlan is an observation request submitted by an astronomer.
//
// Optional imaging values are pointers so that "not supplied" can be told
// apart from zero. A zero StartDate or EndDate means the date was not supplied.
type SciencePlan struct {
	PlanNo      int         `json:"plan_no"`
	Name        string      `json:"name"`
	Objective   string      `json:"objective"`
	Creator     *Astronomer `json:"creator,omitempty"`
	Funding     float64     `json:"funding"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	Telescope   string      `json:"telescope"`
	Target      string      `json:"target"`
	Status      Status      `json:"status"`
	FileType    FileType    `json:"file_type,omitempty"`
	FileQuality FileQuality `json:"file_quality,omitempty"`
	ColorType   ColorType   `json:"color_type,omitempty"`
	Contrast    *float64    `json:"contrast,omitempty"`
	Brightness  *float64    `json:"brightness,omitempty"`
	Saturation  *float64    `json:"saturation,omitempty"`
	Exposure    *float64    `json:"exposure,omitempty"`

	// AstronomicalData is the append-only list of collected results.
	AstronomicalData []AstronomicalData `json:"astronomical_data,omitempty"`
}

// MissingRequiredFields returns the names of required fields that are blank.
func (p *SciencePlan) MissingRequiredFields() []string {
	var missing []string
	if isBlank(p.Name) {
		missing = append(missing, "name")
	}
	if isBlank(p.Objective) {
		missing = append(missing, "objective")
	}
	if p.StartDate.IsZero() {
		missing = append(missing, "start_date")
	}
	if p.EndDate.IsZero() {
		missing = append(missing, "end_date")
	}
	if isBlank(p.Telescope) {
		missing = append(missing, "telescope")
	}
	if isBlank(p.Target) {
		missing = append(missing, "target")
	}
	return missing
}

// Clone returns a deep copy of the plan.
func (p *SciencePlan) Clone() *SciencePlan {
	if p == nil {
		return nil
	}
	c := *p
	if p.Creator != nil {
		a := *p.Creator
		c.Creator = &a
	}
	c.Contrast = cloneFloat(p.Contrast)
	c.Brightness = cloneFloat(p.Brightness)
	c.Saturation = cloneFloat(p.Saturation)
	c.Exposure = cloneFloat(p.Exposure)
	if p.AstronomicalData != nil {
		c.AstronomicalData = append([]AstronomicalData(nil), p.AstronomicalData...)
	}
	return &c
}

func (p *SciencePlan) String() string {
	return fmt.Sprintf("#%d [%s] %s (%s, %s)", p.PlanNo, p.Status, p.Name, p.Telescope, p.Target)
}

// Float returns a pointer to v, for populating optional imaging fields.
func Float(v float64) *float64 {
	return &v
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FileType is the output image format
type FileType string

const (
	FilePNG  FileType = "PNG"
	FileJPEG FileType = "JPEG"
	FileRAW  FileType = "RAW"
)

// FileTypes lists the file types in display order.
func FileTypes() []FileType {
	return []FileType{FilePNG, FileJPEG, FileRAW}
}

// IsValid checks if the file type value is valid
func (f FileType) IsValid() bool {
	switch f {
	case FilePNG, FileJPEG, FileRAW:
		return true
	}
	return false
}

// FileQuality is the output image quality
type FileQuality string

const (
	QualityLow  FileQuality = "LOW"
	QualityFine FileQuality = "FINE"
)

// FileQualities lists the file qualities in display order.
func FileQualities() []FileQuality {
	return []FileQuality{QualityLow, QualityFine}
}

// IsValid checks if the file quality value is valid
func (q FileQuality) IsValid() bool {
	return q == QualityLow || q == QualityFine
}

// ColorType selects color or black-and-white processing
type ColorType string

const (
	ColorColor ColorType = "COLOR"
	ColorBW    ColorType = "BW"
)

// ColorTypes lists the color types in display order.
func ColorTypes() []ColorType {
	return []ColorType{ColorColor, ColorBW}
}

// IsValid checks if the color type value is valid
func (c ColorType) IsValid() bool {
	return c == ColorColor || c == ColorBW
}

// Telescope sites operated by the facility
const (
	TelescopeHawaii = "Hawaii"
	TelescopeChile  = "Chile"
)

// Telescopes lists the known telescope sites.
func Telescopes() []string {
	return []string{TelescopeHawaii, TelescopeChile}
}

// AstronomicalData is an opaque reference to a collected result artifact.
type AstronomicalData struct {
	FileName    string    `json:"file_name"`
	Description string    `json:"description,omitempty"`
	CollectedAt time.Time `json:"collected_at"`
}

// Validate checks if the astronomical data reference is usable
func (d AstronomicalData) Validate() error {
	if isBlank(d.FileName) {
		return fmt.Errorf("file_name is required")
	}
	return nil
}
