// Package shell is an interactive terminal front end for a shopping session,
// built on bubbletea. Each input line is one command.
package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

type Type string

const (
	TypeAdd      Type = "add"
	TypeEdit     Type = "edit"
	TypeSave     Type = "save"
	TypeCancel   Type = "cancel"
	TypeDelete   Type = "del"
	TypeClear    Type = "clear"
	TypeSample   Type = "sample"
	TypeImport   Type = "import"
	TypeSnap     Type = "snap"
	TypeSnaps    Type = "snaps"
	TypeAisle    Type = "aisle"
	TypeMeal     Type = "meal"
	TypeMealPlan Type = "meals"
	TypeHelp     Type = "help"
	TypeQuit     Type = "quit"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Command is one parsed input line. Only the fields its Type uses are set.
type Command struct {
	Type Type
	Raw  string

	// Category is empty for an add that should be classified.
	Category types.Category
	// Index is zero-based; users type one-based positions.
	Index int
	Text  string

	// SnapOp is "save", "load" or "rm" for TypeSnap.
	SnapOp string
	Meal   types.Meal
}

// Parse turns an input line into a Command. A leading "/" is ignored and
// "exit" is accepted for quit.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head, rest, _ := strings.Cut(raw, " ")
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)

	switch t := Type(strings.ToLower(head)); t {
	case TypeAdd:
		return parseAdd(raw, args)
	case TypeEdit, TypeDelete:
		return parsePosition(raw, t, args)
	case TypeSave:
		return Command{Type: TypeSave, Raw: raw, Text: rest}, nil
	case TypeImport:
		if rest == "" {
			return Command{}, invalid("import requires text")
		}
		return Command{Type: TypeImport, Raw: raw, Text: rest}, nil
	case TypeSnap:
		return parseSnap(raw, args)
	case TypeAisle:
		if rest == "" {
			return Command{}, invalid("aisle requires an item")
		}
		return Command{Type: TypeAisle, Raw: raw, Text: rest}, nil
	case TypeMeal:
		return parseMeal(raw, rest)
	case TypeCancel, TypeClear, TypeSample, TypeSnaps, TypeMealPlan, TypeHelp, TypeQuit:
		return Command{Type: t, Raw: raw}, nil
	case "exit", "q":
		return Command{Type: TypeQuit, Raw: raw}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func invalid(msg string) error {
	return &CommandError{Code: ErrCodeInvalidArgument, Message: msg}
}

// parseAdd accepts "add <text>" and "add <category> <text>".
func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, invalid("add requires text")
	}
	cmd := Command{Type: TypeAdd, Raw: raw}
	if len(args) > 1 {
		if c, err := types.ParseCategory(args[0]); err == nil {
			cmd.Category = c
			args = args[1:]
		}
	}
	cmd.Text = strings.Join(args, " ")
	return cmd, nil
}

func parsePosition(raw string, t Type, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, invalid(fmt.Sprintf("%s requires a category and a position", t))
	}
	c, err := types.ParseCategory(args[0])
	if err != nil {
		return Command{}, invalid(err.Error())
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 {
		return Command{}, invalid(fmt.Sprintf("position must be a number from 1, got %q", args[1]))
	}
	return Command{Type: t, Raw: raw, Category: c, Index: n - 1}, nil
}

func parseSnap(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, invalid("snap requires save, load or rm and a name")
	}
	op := strings.ToLower(args[0])
	switch op {
	case "save", "load", "rm":
	default:
		return Command{}, invalid(fmt.Sprintf("unknown snap operation: %s", op))
	}
	return Command{Type: TypeSnap, Raw: raw, SnapOp: op, Text: strings.Join(args[1:], " ")}, nil
}

// parseMeal reads "meal <meat>|<vegetable>|<side>"; any part may be blank.
func parseMeal(raw, rest string) (Command, error) {
	parts := strings.Split(rest, "|")
	if len(parts) > 3 || strings.TrimSpace(strings.Join(parts, "")) == "" {
		return Command{}, invalid("meal takes <meat>|<vegetable>|<side>")
	}
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return Command{Type: TypeMeal, Raw: raw, Meal: types.Meal{
		Meat:      strings.TrimSpace(parts[0]),
		Vegetable: strings.TrimSpace(parts[1]),
		Side:      strings.TrimSpace(parts[2]),
	}}, nil
}

// HelpText lists the commands the shell understands.
const HelpText = `add [pickup|instore] <text>   add an item (category guessed when omitted)
edit <category> <n>           open item n for editing
save <text>                   save the edit, or add when not editing
cancel                        abandon the edit
del <category> <n>            delete item n
clear | sample                empty both lists | load sample items
import <a, b, c>              add comma-separated items
snap save|load|rm <name>      manage snapshots; snaps lists them
aisle <item>                  look up the store aisle
meals | meal <m>|<v>|<s>      show meal plan | add a meal
help | quit`
