/*package parse reads the plain-text config files consumed by the randkit
command line tool. A config file is a named block header followed by
variable assignments:

	[randkit]
	Generator = twister
	Seed      = 1337
	Count     = 10000

Comments start with # and run to the end of the line. Variable names are
case-insensitive.*/
package parse

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type varType int

const (
	intVar varType = iota
	floatVar
	stringVar
	boolVar
)

func (v varType) String() string {
	switch v {
	case intVar:
		return "int"
	case floatVar:
		return "float"
	case stringVar:
		return "string"
	case boolVar:
		return "bool"
	}
	panic("impossible")
}

type binding struct {
	name string
	typ  varType
	conv func(string) bool
}

// ConfigVars is a set of typed variable bindings for one config block.
// Register variables with the Int/Float/String/Bool methods, then call
// ReadConfig to fill them in.
type ConfigVars struct {
	block    string
	bindings []binding
}

// NewConfigVars creates a binding set for the config block with the given
// header name.
func NewConfigVars(block string) *ConfigVars {
	return &ConfigVars{block: block}
}

// Int registers an integer variable with a default value.
func (vars *ConfigVars) Int(ptr *int64, name string, value int64) {
	*ptr = value
	vars.add(name, intVar, func(s string) bool {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return false
		}
		*ptr = i
		return true
	})
}

// Float registers a float variable with a default value.
func (vars *ConfigVars) Float(ptr *float64, name string, value float64) {
	*ptr = value
	vars.add(name, floatVar, func(s string) bool {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return false
		}
		*ptr = f
		return true
	})
}

// String registers a string variable with a default value.
func (vars *ConfigVars) String(ptr *string, name string, value string) {
	*ptr = value
	vars.add(name, stringVar, func(s string) bool {
		*ptr = strings.Trim(s, " ")
		return true
	})
}

// Bool registers a boolean variable with a default value.
func (vars *ConfigVars) Bool(ptr *bool, name string, value bool) {
	*ptr = value
	vars.add(name, boolVar, func(s string) bool {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false
		}
		*ptr = b
		return true
	})
}

func (vars *ConfigVars) add(name string, typ varType, conv func(string) bool) {
	vars.bindings = append(vars.bindings, binding{
		name: strings.ToLower(name), typ: typ, conv: conv,
	})
}

func (vars *ConfigVars) lookup(name string) *binding {
	for i := range vars.bindings {
		if vars.bindings[i].name == name {
			return &vars.bindings[i]
		}
	}
	return nil
}

// ReadConfig parses the file at fname against the registered bindings.
// Unknown variables, duplicate assignments, and unconvertible values are
// all errors; variables absent from the file keep their defaults.
func ReadConfig(fname string, vars *ConfigVars) error {
	bs, err := os.ReadFile(fname)
	if err != nil {
		return err
	}

	lines, lineNums := stripComments(strings.Split(string(bs), "\n"))
	if len(lines) == 0 || lines[0] != fmt.Sprintf("[%s]", vars.block) {
		return fmt.Errorf(
			"the config file %s does not start with the header [%s]",
			fname, vars.block,
		)
	}

	seen := map[string]int{}
	for i, line := range lines[1:] {
		num := lineNums[i+1]
		eq := strings.Index(line, "=")
		if eq <= 0 {
			return fmt.Errorf(
				"line %d of the config file %s is not a variable assignment",
				num, fname,
			)
		}
		name := strings.ToLower(strings.Trim(line[:eq], " "))
		val := strings.Trim(line[eq+1:], " ")

		b := vars.lookup(name)
		if b == nil {
			return fmt.Errorf(
				"line %d of the config file %s assigns to '%s', but [%s] "+
					"config files have no such variable",
				num, fname, name, vars.block,
			)
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf(
				"lines %d and %d of the config file %s both assign to '%s'",
				prev, num, fname, name,
			)
		}
		seen[name] = num

		if !b.conv(val) {
			return fmt.Errorf(
				"line %d of the config file %s: '%s' cannot be converted "+
					"to the %s variable '%s'",
				num, fname, val, b.typ, name,
			)
		}
	}
	return nil
}

// stripComments removes comments and blank lines, keeping the original
// 1-based line number of every surviving line.
func stripComments(lines []string) ([]string, []int) {
	out, nums := []string{}, []int{}
	for i, line := range lines {
		if cut := strings.Index(line, "#"); cut != -1 {
			line = line[:cut]
		}
		line = strings.Trim(line, " \t\r")
		if len(line) == 0 {
			continue
		}
		out = append(out, line)
		nums = append(nums, i+1)
	}
	return out, nums
}
