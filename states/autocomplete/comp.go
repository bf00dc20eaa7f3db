package autocomplete

type cmdCompType int

const (
	cmdCompAll cmdCompType = iota
	cmdCompCommand
	cmdCompFlag
)

type cComp struct {
	// raw is the complete value before component parsing
	raw string
	// cTag is command name for cmd, or flag name for cmdFlag
	cTag string
	// cValue is the flag value of the `--flag=value` form
	cValue string
	// cType marks the comp is command or flag
	cType cmdCompType
	// assigned is set for the `--flag=value` form
	assigned bool
}
