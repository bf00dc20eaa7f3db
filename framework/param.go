package framework

// CmdParam is the interface definition for command parameter.
//
// Exported fields of the implementing struct become command parameters:
//
//	name    parameter name, defaults to the lower cased field name
//	type    registered type name, inferred from the field kind when empty
//	default default value text, an empty default makes the parameter optional
//	desc    description
//	min/max bounds of number parameters
//	options comma separated options, makes the parameter a selection
type CmdParam interface {
	Desc() (string, string)
}

// ParamBase implements CmdParam with use and desc read from its tags.
type ParamBase struct{}

func (pb ParamBase) Desc() (string, string) {
	return "", ""
}
