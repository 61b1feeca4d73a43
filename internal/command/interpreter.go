package command

import (
	"strconv"
	"strings"

	"github.com/zeebo/errs"

	"github.com/Philanthropists/linkedcontainers/internal/config"
	"github.com/Philanthropists/linkedcontainers/internal/logging"
	"github.com/Philanthropists/linkedcontainers/internal/session"
	"github.com/Philanthropists/linkedcontainers/internal/types/result"
	"github.com/Philanthropists/linkedcontainers/internal/util/regexp"
)

// NoValue is printed when a pop or peek finds an empty container.
const NoValue = "<none>"

const okValue = "ok"

var ErrUnknownCommand = errs.Class("unknown command")

type verb string

const (
	verbStack   verb = "stack"
	verbQueue   verb = "queue"
	verbPush    verb = "push"
	verbPop     verb = "pop"
	verbPeek    verb = "peek"
	verbEnqueue verb = "enqueue"
	verbDequeue verb = "dequeue"
	verbFront   verb = "front"
	verbRear    verb = "rear"
	verbSize    verb = "size"
	verbEmpty   verb = "empty"
	verbFull    verb = "full"
	verbDrop    verb = "drop"
	verbList    verb = "list"
)

const (
	nameField     = "name"
	valueField    = "value"
	capacityField = "capacity"
)

func withName(v verb) *regexp.Match[verb] {
	return regexp.MustCompile(`(?i)^`+string(v)+`\s+(?P<name>\S+)$`, v)
}

func withValue(v verb) *regexp.Match[verb] {
	return regexp.MustCompile(`(?i)^`+string(v)+`\s+(?P<name>\S+)\s+(?P<value>\S.*)$`, v)
}

var grammar = []*regexp.Match[verb]{
	regexp.MustCompile(`(?i)^stack\s+(?P<name>\S+)(?:\s+(?P<capacity>-?\d+))?$`, verbStack),
	withName(verbQueue),
	withValue(verbPush),
	withName(verbPop),
	withName(verbPeek),
	withValue(verbEnqueue),
	withName(verbDequeue),
	withName(verbFront),
	withName(verbRear),
	withName(verbSize),
	withName(verbEmpty),
	withName(verbFull),
	withName(verbDrop),
	regexp.MustCompile(`(?i)^list$`, verbList),
}

type Interpreter struct {
	Registry *session.Registry
	// DefaultCapacity is used by "stack" when no capacity is given. Negative
	// means unbounded.
	DefaultCapacity int

	log *logging.Logger
}

func New(registry *session.Registry, defaultCapacity int, log *logging.Logger) *Interpreter {
	if log == nil {
		log = logging.New()
	}

	return &Interpreter{
		Registry:        registry,
		DefaultCapacity: defaultCapacity,
		log:             log.With(logging.String(logging.ComponentKey, "command")),
	}
}

// Skip reports whether line carries no command.
func Skip(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.HasPrefix(line, "#")
}

// Execute runs a single command line and returns its printable outcome.
func (in *Interpreter) Execute(line string) result.Result[string] {
	line = strings.TrimSpace(line)
	if Skip(line) {
		return result.Ok("")
	}

	m, ok := regexp.MatchesAnyRegexp(grammar, line)
	if !ok {
		return result.Fail[string](ErrUnknownCommand.New("%q", line))
	}

	fields := regexp.ExtractFields(line, m)
	out, err := in.run(m.Value, fields)
	if err != nil {
		in.log.Debug("command failed",
			logging.String(logging.CommandKey, m.Value),
			logging.Container(fields[nameField]),
			logging.Error(err),
		)
		return result.Fail[string](err)
	}

	return result.Ok(out)
}

func (in *Interpreter) run(v verb, fields map[string]string) (string, error) {
	name := fields[nameField]

	switch v {
	case verbStack:
		return in.createStack(name, fields)
	case verbQueue:
		_, err := in.Registry.CreateQueue(name)
		return okValue, err
	case verbPush, verbPop, verbPeek, verbFull:
		return in.stackOp(v, name, fields[valueField])
	case verbEnqueue, verbDequeue, verbFront, verbRear:
		return in.queueOp(v, name, fields[valueField])
	case verbSize, verbEmpty:
		_, c, err := in.Registry.Lookup(name)
		if err != nil {
			return "", err
		}
		if v == verbSize {
			return strconv.Itoa(c.Size()), nil
		}
		empty := c.IsEmpty()
		in.log.Debug("emptiness checked", logging.Container(name), logging.Bool(logging.EmptyKey, empty))
		return strconv.FormatBool(empty), nil
	case verbDrop:
		return okValue, in.Registry.Drop(name)
	case verbList:
		return strings.Join(in.Registry.Names(), ","), nil
	}

	return "", ErrUnknownCommand.New("%q", v)
}

func (in *Interpreter) createStack(name string, fields map[string]string) (string, error) {
	capacity := in.DefaultCapacity
	if raw, ok := fields[capacityField]; ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return "", errs.New("invalid capacity %q: %w", raw, err)
		}
		if n < config.UnboundedCapacity {
			return "", errs.New("capacity:%d must be %d or greater", n, config.UnboundedCapacity)
		}
		capacity = n
	}

	_, err := in.Registry.CreateStack(name, capacity)
	return okValue, err
}

func (in *Interpreter) stackOp(v verb, name, value string) (string, error) {
	s, err := in.Registry.Stack(name)
	if err != nil {
		return "", err
	}

	switch v {
	case verbPush:
		if err := s.Push(value); err != nil {
			return "", err
		}
		return okValue, nil
	case verbPop:
		return orNoValue(s.Pop())
	case verbPeek:
		return orNoValue(s.Peek())
	default:
		full := s.IsFull()
		in.log.Debug("fullness checked",
			logging.Container(name),
			logging.Bool(logging.FullKey, full),
			logging.Capacity(s.Capacity()),
		)
		return strconv.FormatBool(full), nil
	}
}

func (in *Interpreter) queueOp(v verb, name, value string) (string, error) {
	q, err := in.Registry.Queue(name)
	if err != nil {
		return "", err
	}

	switch v {
	case verbEnqueue:
		q.Enqueue(value)
		return okValue, nil
	case verbDequeue:
		return orNoValue(q.Dequeue())
	case verbFront:
		return orNoValue(q.Front())
	default:
		return orNoValue(q.Rear())
	}
}

func orNoValue(v string, ok bool) (string, error) {
	if !ok {
		return NoValue, nil
	}
	return v, nil
}
