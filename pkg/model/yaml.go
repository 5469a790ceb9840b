package model

import "gopkg.in/yaml.v3"

// YAML unmarshalling for the enums, so scenario files can use the same
// spellings as the CLI flags ("PI", "64QAM", "2/3", ...).

func unmarshalEnum[T any](value *yaml.Node, parse func(string) (T, error), dst *T) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := parse(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalEnum(value, ParseMode, m)
}

func (e *Environment) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalEnum(value, ParseEnvironment, e)
}

func (m *Modulation) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalEnum(value, ParseModulation, m)
}

func (r *CodeRate) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalEnum(value, ParseCodeRate, r)
}

func (r *ReceiverType) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalEnum(value, ParseReceiverType, r)
}

func (a *AntennaType) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalEnum(value, ParseAntennaType, a)
}

func (b *BuildingClass) UnmarshalYAML(value *yaml.Node) error {
	return unmarshalEnum(value, ParseBuildingClass, b)
}

// MarshalYAML emits the canonical string form.

func (m Mode) MarshalYAML() (interface{}, error)          { return m.String(), nil }
func (e Environment) MarshalYAML() (interface{}, error)   { return e.String(), nil }
func (m Modulation) MarshalYAML() (interface{}, error)    { return m.String(), nil }
func (r CodeRate) MarshalYAML() (interface{}, error)      { return r.String(), nil }
func (r ReceiverType) MarshalYAML() (interface{}, error)  { return r.String(), nil }
func (a AntennaType) MarshalYAML() (interface{}, error)   { return a.String(), nil }
func (b BuildingClass) MarshalYAML() (interface{}, error) { return b.String(), nil }
