package flight

import (
	"fmt"
	"math"
)

// Canonical field names, matching the column names of the results table.
const (
	FieldEta        = "eta_system"
	FieldPackDens   = "epack_wh_per_kg"
	FieldBattMass   = "m_batt_kg"
	FieldTotalMass  = "m_total_kg"
	FieldGravity    = "gravity"
	FieldLiftDrag   = "l_over_d"
	FieldSFC        = "sfc_eq"
	FieldHarvest    = "harvest_kw"
	FieldSicGain    = "sic_gain"
)

// FieldNames lists the nine parameter fields in canonical order. Sampling
// iterates this order, so it is part of the reproducibility contract.
var FieldNames = []string{
	FieldEta,
	FieldPackDens,
	FieldBattMass,
	FieldTotalMass,
	FieldGravity,
	FieldLiftDrag,
	FieldSFC,
	FieldHarvest,
	FieldSicGain,
}

// ParameterVector holds the nine physical inputs of one range evaluation.
type ParameterVector struct {
	EtaSystem   float64 `yaml:"eta_system" json:"eta_system"`
	PackDensity float64 `yaml:"epack_wh_per_kg" json:"epack_wh_per_kg"`
	BatteryMass float64 `yaml:"m_batt_kg" json:"m_batt_kg"`
	TotalMass   float64 `yaml:"m_total_kg" json:"m_total_kg"`
	Gravity     float64 `yaml:"gravity" json:"gravity"`
	LiftToDrag  float64 `yaml:"l_over_d" json:"l_over_d"`
	SFCEq       float64 `yaml:"sfc_eq" json:"sfc_eq"`
	HarvestKW   float64 `yaml:"harvest_kw" json:"harvest_kw"`
	SicGain     float64 `yaml:"sic_gain" json:"sic_gain"`
}

// DefaultNominal returns the reference Al-ion + SiC design point.
func DefaultNominal() ParameterVector {
	return ParameterVector{
		EtaSystem:   0.92,
		PackDensity: 450.0,
		BatteryMass: 25000.0,
		TotalMass:   80000.0,
		Gravity:     9.80665,
		LiftToDrag:  22.0,
		SFCEq:       0.00015,
		HarvestKW:   15.0,
		SicGain:     1.08,
	}
}

// Field returns the value of the named parameter.
func (p ParameterVector) Field(name string) (float64, error) {
	switch name {
	case FieldEta:
		return p.EtaSystem, nil
	case FieldPackDens:
		return p.PackDensity, nil
	case FieldBattMass:
		return p.BatteryMass, nil
	case FieldTotalMass:
		return p.TotalMass, nil
	case FieldGravity:
		return p.Gravity, nil
	case FieldLiftDrag:
		return p.LiftToDrag, nil
	case FieldSFC:
		return p.SFCEq, nil
	case FieldHarvest:
		return p.HarvestKW, nil
	case FieldSicGain:
		return p.SicGain, nil
	}
	return 0, fmt.Errorf("flight: unknown parameter field %q", name)
}

// SetField assigns the named parameter.
func (p *ParameterVector) SetField(name string, value float64) error {
	switch name {
	case FieldEta:
		p.EtaSystem = value
	case FieldPackDens:
		p.PackDensity = value
	case FieldBattMass:
		p.BatteryMass = value
	case FieldTotalMass:
		p.TotalMass = value
	case FieldGravity:
		p.Gravity = value
	case FieldLiftDrag:
		p.LiftToDrag = value
	case FieldSFC:
		p.SFCEq = value
	case FieldHarvest:
		p.HarvestKW = value
	case FieldSicGain:
		p.SicGain = value
	default:
		return fmt.Errorf("flight: unknown parameter field %q", name)
	}
	return nil
}

// IsValid reports whether every field is finite.
func (p ParameterVector) IsValid() bool {
	for _, name := range FieldNames {
		v, _ := p.Field(name)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
