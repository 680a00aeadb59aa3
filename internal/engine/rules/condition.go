package rules

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/Shopify/go-lua"

	"github.com/foolchen/lifeRestart/internal/entities"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	ageRangePattern   = regexp.MustCompile(`within\(\s*AGE\s*,\s*\{([^}]*)\}\s*\)`)
)

// newState returns a Lua state with only the side-effect free libraries
// unsafeGlobals are base library functions that reach the filesystem or
// compile new chunks
var unsafeGlobals = []string{"dofile", "loadfile", "load", "loadstring"}

func newState() *lua.State {
	state := lua.NewState()
	for _, lib := range []lua.RegistryFunction{
		{Name: "_G", Function: lua.BaseOpen},
		{Name: "math", Function: lua.MathOpen},
		{Name: "string", Function: lua.StringOpen},
		{Name: "table", Function: lua.TableOpen},
	} {
		lua.Require(state, lib.Name, lib.Function, true)
		state.Pop(1)
	}
	for _, name := range unsafeGlobals {
		state.PushNil()
		state.SetGlobal(name)
	}

	state.Register("has", luaHas)
	state.Register("within", luaWithin)
	return state
}

// luaHas implements has(list, value)
func luaHas(state *lua.State) int {
	lua.CheckType(state, 1, lua.TypeTable)
	lua.CheckAny(state, 2)
	state.PushBoolean(tableContains(state, 1, 2))
	return 1
}

// luaWithin implements within(value, list)
func luaWithin(state *lua.State) int {
	lua.CheckAny(state, 1)
	lua.CheckType(state, 2, lua.TypeTable)
	state.PushBoolean(tableContains(state, 2, 1))
	return 1
}

func tableContains(state *lua.State, table, value int) bool {
	n := state.RawLength(table)
	for i := 1; i <= n; i++ {
		state.RawGetInt(table, i)
		found := state.Compare(-1, value, lua.OpEq)
		state.Pop(1)
		if found {
			return true
		}
	}
	return false
}

// pushValue pushes a Go value onto the stack. Unsupported types become nil.
func pushValue(state *lua.State, v any) {
	switch val := v.(type) {
	case nil:
		state.PushNil()
	case bool:
		state.PushBoolean(val)
	case int:
		state.PushInteger(val)
	case int32:
		state.PushInteger(int(val))
	case int64:
		state.PushInteger(int(val))
	case float32:
		state.PushNumber(float64(val))
	case float64:
		state.PushNumber(val)
	case string:
		state.PushString(val)
	case []int:
		state.NewTable()
		for i, item := range val {
			state.PushInteger(item)
			state.RawSetInt(-2, i+1)
		}
	case []string:
		state.NewTable()
		for i, item := range val {
			state.PushString(item)
			state.RawSetInt(-2, i+1)
		}
	case []any:
		state.NewTable()
		for i, item := range val {
			pushValue(state, item)
			state.RawSetInt(-2, i+1)
		}
	case map[string]any:
		state.NewTable()
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			pushValue(state, val[k])
			state.SetField(-2, k)
		}
	default:
		state.PushNil()
	}
}

// evaluate runs condition as a boolean Lua expression with property keys
// bound as globals
func evaluate(property entities.Property, condition string) (bool, error) {
	state := newState()

	for key, value := range property {
		if !identifierPattern.MatchString(key) {
			continue
		}
		pushValue(state, value)
		state.SetGlobal(key)
	}

	if err := lua.LoadString(state, "return ("+condition+")"); err != nil {
		return false, fmt.Errorf("compile condition %q: %w", condition, err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return false, fmt.Errorf("evaluate condition %q: %w", condition, err)
	}

	result := state.ToBoolean(-1)
	state.Pop(1)
	return result, nil
}

// maxTriggers counts the entries of the first within(AGE, {..}) clause
func maxTriggers(condition string) int {
	match := ageRangePattern.FindStringSubmatch(condition)
	if match == nil {
		return 1
	}

	count := 0
	for _, part := range strings.Split(match[1], ",") {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	if count == 0 {
		return 1
	}
	return count
}
