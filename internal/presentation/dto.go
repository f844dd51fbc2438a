package presentation

import (
	"github.com/sahidursuman/measured/internal/measurable"
)

// ConversionDTO represents one conversion result. Amounts encode as
// {"kind","value","unit"} and decode through the process-wide catalog.
type ConversionDTO struct {
	Kind string                 `json:"kind"`
	From *measurable.Measurable `json:"from"`
	To   *measurable.Measurable `json:"to"`
}

// ComparisonDTO represents the result of comparing two amounts
type ComparisonDTO struct {
	Kind     string                 `json:"kind"`
	Left     *measurable.Measurable `json:"left"`
	Right    *measurable.Measurable `json:"right"`
	Result   int                    `json:"result"`   // -1, 0 or 1
	Relation string                 `json:"relation"` // "<", "=" or ">"
}

// UnitDTO represents a unit of a kind
type UnitDTO struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
	Factor  string   `json:"factor"` // base units per unit
	Base    bool     `json:"base"`
}

// KindDTO represents a quantity kind and its units
type KindDTO struct {
	Name      string    `json:"name"`
	Humanized string    `json:"humanized"`
	Base      string    `json:"base"`
	Units     []UnitDTO `json:"units,omitempty"`
}

// FromConversion builds the DTO for from converted to to
func FromConversion(from, to *measurable.Measurable) ConversionDTO {
	return ConversionDTO{
		Kind: from.Kind().Name(),
		From: from,
		To:   to,
	}
}

// FromComparison builds the DTO for a Compare result
func FromComparison(left, right *measurable.Measurable, result int) ComparisonDTO {
	relation := "="
	switch {
	case result < 0:
		relation = "<"
	case result > 0:
		relation = ">"
	}
	return ComparisonDTO{
		Kind:     left.Kind().Name(),
		Left:     left,
		Right:    right,
		Result:   result,
		Relation: relation,
	}
}

// FromKind converts a kind to a DTO. Units are listed in declaration order
// when withUnits is set.
func FromKind(k *measurable.Kind, withUnits bool) (KindDTO, error) {
	reg, err := k.Registry()
	if err != nil {
		return KindDTO{}, err
	}
	dto := KindDTO{
		Name:      k.Name(),
		Humanized: k.HumanizedName(),
		Base:      reg.Base().Name(),
	}
	if !withUnits {
		return dto, nil
	}
	for _, u := range reg.List() {
		aliases := u.Aliases()
		if aliases == nil {
			aliases = []string{}
		}
		dto.Units = append(dto.Units, UnitDTO{
			Name:    u.Name(),
			Aliases: aliases,
			Factor:  u.Factor().String(),
			Base:    u.IsBase(),
		})
	}
	return dto, nil
}

// FromKinds converts kinds to DTOs
func FromKinds(kinds []*measurable.Kind, withUnits bool) ([]KindDTO, error) {
	dtos := make([]KindDTO, 0, len(kinds))
	for _, k := range kinds {
		dto, err := FromKind(k, withUnits)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}
