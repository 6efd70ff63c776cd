package core

// CommandKind names the flavor of a logged database command.
type CommandKind string

const (
	CommandText            CommandKind = "Text"
	CommandStoredProcedure CommandKind = "StoredProcedure"
	CommandTableDirect     CommandKind = "TableDirect"
)

// QueryParam is one bound parameter of a QueryCommand. Parameters keep
// their binding order.
type QueryParam struct {
	Name  string
	Value interface{}
}

// QueryCommand is the structured-command payload shape. Logging one emits
// the command kind, its literal text, and one line per bound parameter.
type QueryCommand struct {
	Kind   CommandKind
	Text   string
	Params []QueryParam
}

// Param appends a bound parameter and returns the command for chaining.
func (c *QueryCommand) Param(name string, value interface{}) *QueryCommand {
	c.Params = append(c.Params, QueryParam{Name: name, Value: value})
	return c
}
