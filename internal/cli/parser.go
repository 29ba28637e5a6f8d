// Package cli turns the argument vector into a Command.
package cli

import (
	"errors"
	"fmt"
	"strconv"
)

// Command is one of Add, Delete, Do, List or Unknown.
type Command interface {
	command()
}

type Add struct {
	Text string
}

type Delete struct {
	ID int32
}

type Do struct {
	ID int32
}

type List struct {
	ShowDone bool
}

type Unknown struct {
	Name string
}

func (Add) command()     {}
func (Delete) command()  {}
func (Do) command()      {}
func (List) command()    {}
func (Unknown) command() {}

var (
	ErrArgumentMissing = errors.New("argument missing")
	ErrArgumentInvalid = errors.New("argument invalid")
)

// ArgError is a usage problem. Message is printed to the user as is.
type ArgError struct {
	Kind    error
	Message string
}

func (e *ArgError) Error() string {
	return e.Message
}

func (e *ArgError) Is(target error) bool {
	return target == e.Kind
}

const (
	MsgMissingTask = "Missing argument: task"
	MsgMissingID   = "Missing argument: id"
	MsgInvalidID   = "Please provide a valid id"

	ShowDoneFlag = "--show-done"
)

// Parse reads args without the program name. No subcommand means list.
// Arguments past the ones a command needs are ignored.
func Parse(args []string) (Command, error) {
	if len(args) == 0 {
		return List{}, nil
	}
	name, rest := args[0], args[1:]

	switch name {
	case "add":
		if len(rest) == 0 {
			return nil, &ArgError{Kind: ErrArgumentMissing, Message: MsgMissingTask}
		}
		return Add{Text: rest[0]}, nil

	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return nil, err
		}
		return Delete{ID: id}, nil

	case "do":
		id, err := parseID(rest)
		if err != nil {
			return nil, err
		}
		return Do{ID: id}, nil

	case "list":
		return List{ShowDone: len(rest) > 0 && rest[0] == ShowDoneFlag}, nil
	}

	return Unknown{Name: name}, nil
}

func parseID(rest []string) (int32, error) {
	if len(rest) == 0 {
		return 0, &ArgError{Kind: ErrArgumentMissing, Message: MsgMissingID}
	}
	id, err := strconv.ParseInt(rest[0], 10, 32)
	if err != nil {
		return 0, &ArgError{Kind: ErrArgumentInvalid, Message: MsgInvalidID}
	}
	return int32(id), nil
}

// Describe is used for log fields.
func Describe(cmd Command) string {
	switch c := cmd.(type) {
	case Add:
		return "add"
	case Delete:
		return fmt.Sprintf("delete %d", c.ID)
	case Do:
		return fmt.Sprintf("do %d", c.ID)
	case List:
		if c.ShowDone {
			return "list " + ShowDoneFlag
		}
		return "list"
	case Unknown:
		return "unknown " + c.Name
	}
	return "none"
}
