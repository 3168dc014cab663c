package types

import (
	"fmt"
	"strings"
)

// Primary optics models
const (
	OpticsGNZ = "GNZ" // GN Zemax model
	OpticsGSZ = "GSZ" // GS Zemax model
)

// FoldMirrorType is the science fold mirror configuration
type FoldMirrorType string

const (
	FoldReflectiveConvergingBeam FoldMirrorType = "REFLECTIVE_CONVERGING_BEAM"
	FoldCassegrainFocus          FoldMirrorType = "CASSEGRAIN_FOCUS"
)

// FoldMirrorTypes lists the fold mirror types in display order.
func FoldMirrorTypes() []FoldMirrorType {
	return []FoldMirrorType{FoldReflectiveConvergingBeam, FoldCassegrainFocus}
}

// IsValid checks if the fold mirror type value is valid
func (f FoldMirrorType) IsValid() bool {
	return f == FoldReflectiveConvergingBeam || f == FoldCassegrainFocus
}

// CalibrationUnit is the GCAL lamp used for calibration
type CalibrationUnit string

const (
	CalibrationArgon CalibrationUnit = "Argon"
	CalibrationXenon CalibrationUnit = "Xenon"
	CalibrationThAr  CalibrationUnit = "ThAr"
	CalibrationCuAr  CalibrationUnit = "CuAr"
)

// CalibrationUnits lists the calibration lamps in display order.
func CalibrationUnits() []CalibrationUnit {
	return []CalibrationUnit{CalibrationArgon, CalibrationXenon, CalibrationThAr, CalibrationCuAr}
}

// IsValid checks if the calibration unit value is valid
func (c CalibrationUnit) IsValid() bool {
	switch c {
	case CalibrationArgon, CalibrationXenon, CalibrationThAr, CalibrationCuAr:
		return true
	}
	return false
}

// LightType is the sky emission profile used by the light detector
type LightType string

const (
	LightMaunaKeaSkyEmission    LightType = "MaunaKeaSkyEmission"
	LightCerroPachonSkyEmission LightType = "CerroPachonSkyEmission"
)

// LightTypes lists the light types in display order.
func LightTypes() []LightType {
	return []LightType{LightMaunaKeaSkyEmission, LightCerroPachonSkyEmission}
}

// IsValid checks if the light type value is valid
func (l LightType) IsValid() bool {
	return l == LightMaunaKeaSkyEmission || l == LightCerroPachonSkyEmission
}

// TelePositionPair is one telescope pointing step.
type TelePositionPair struct {
	Direction float64 `json:"direction"`
	Degree    float64 `json:"degree"`
}

func (p TelePositionPair) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.Direction, p.Degree)
}

// ProgramParams are the instrument settings collected for an observing program.
type ProgramParams struct {
	OpticsPrimary    string             `json:"optics_primary"`
	FStop            float64            `json:"f_stop"`
	SecondaryRMS     float64            `json:"optics_secondary_rms"`
	FoldMirrorDegree float64            `json:"fold_mirror_degree"`
	FoldMirrorType   FoldMirrorType     `json:"fold_mirror_type"`
	ModuleContent    int                `json:"module_content"`
	CalibrationUnit  CalibrationUnit    `json:"calibration_unit"`
	LightType        LightType          `json:"light_type"`
	TelePositions    []TelePositionPair `json:"tele_positions,omitempty"`
}

// ObservingProgramConfigs is the immutable instrument configuration of an
// observing program. Fields are unexported; use the accessors.
type ObservingProgramConfigs struct {
	opticsPrimary    string
	fStop            float64
	secondaryRMS     float64
	foldMirrorDegree float64
	foldMirrorType   FoldMirrorType
	moduleContent    int
	calibrationUnit  CalibrationUnit
	lightType        LightType
	telePositions    []TelePositionPair
}

// NewObservingProgramConfigs freezes params into a configs value. The
// optics code is normalized to upper case.
func NewObservingProgramConfigs(params ProgramParams) ObservingProgramConfigs {
	return ObservingProgramConfigs{
		opticsPrimary:    strings.ToUpper(strings.TrimSpace(params.OpticsPrimary)),
		fStop:            params.FStop,
		secondaryRMS:     params.SecondaryRMS,
		foldMirrorDegree: params.FoldMirrorDegree,
		foldMirrorType:   params.FoldMirrorType,
		moduleContent:    params.ModuleContent,
		calibrationUnit:  params.CalibrationUnit,
		lightType:        params.LightType,
		telePositions:    append([]TelePositionPair(nil), params.TelePositions...),
	}
}

func (c ObservingProgramConfigs) OpticsPrimary() string            { return c.opticsPrimary }
func (c ObservingProgramConfigs) FStop() float64                   { return c.fStop }
func (c ObservingProgramConfigs) SecondaryRMS() float64            { return c.secondaryRMS }
func (c ObservingProgramConfigs) FoldMirrorDegree() float64        { return c.foldMirrorDegree }
func (c ObservingProgramConfigs) FoldMirrorType() FoldMirrorType   { return c.foldMirrorType }
func (c ObservingProgramConfigs) ModuleContent() int               { return c.moduleContent }
func (c ObservingProgramConfigs) CalibrationUnit() CalibrationUnit { return c.calibrationUnit }
func (c ObservingProgramConfigs) LightType() LightType             { return c.lightType }

// TelePositions returns a copy of the pointing sequence.
func (c ObservingProgramConfigs) TelePositions() []TelePositionPair {
	return append([]TelePositionPair(nil), c.telePositions...)
}

// Params returns the configs as mutable parameters.
func (c ObservingProgramConfigs) Params() ProgramParams {
	return ProgramParams{
		OpticsPrimary:    c.opticsPrimary,
		FStop:            c.fStop,
		SecondaryRMS:     c.secondaryRMS,
		FoldMirrorDegree: c.foldMirrorDegree,
		FoldMirrorType:   c.foldMirrorType,
		ModuleContent:    c.moduleContent,
		CalibrationUnit:  c.calibrationUnit,
		LightType:        c.lightType,
		TelePositions:    c.TelePositions(),
	}
}

// ObservingProgram is the instrument program derived from a validated plan.
// The owning plan is referenced by number only.
type ObservingProgram struct {
	ID       int                     `json:"id"`
	PlanNo   int                     `json:"plan_no"`
	Observer ScienceObserver         `json:"observer"`
	Configs  ObservingProgramConfigs `json:"-"`

	Site             string  `json:"site"`
	OpticsPrimary    string  `json:"optics_primary"`
	FStop            float64 `json:"f_stop"`
	SecondaryRMS     float64 `json:"optics_secondary_rms"`
	FoldMirrorDegree float64 `json:"fold_mirror_degree"`
	ModuleContent    int     `json:"module_content"`
}

// Validate checks if the observing program has valid field values
func (o *ObservingProgram) Validate() error {
	if o.ID <= 0 {
		return fmt.Errorf("id must be positive (got %d)", o.ID)
	}
	if o.PlanNo <= 0 {
		return fmt.Errorf("plan_no must be positive (got %d)", o.PlanNo)
	}
	return nil
}

func (o *ObservingProgram) String() string {
	return fmt.Sprintf("ObservingProgram{id=%d, plan=%d, observer=%d}", o.ID, o.PlanNo, o.Observer.ID)
}
