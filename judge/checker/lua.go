package checker

import (
	"io"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// LuaChecker embeds a Lua script (via gopher-lua) that defines a
// judge(got, expected) function returning true/false. Ports the
// teacher library's LuaJudger, generalized to the Checker contract:
// no external process is spawned, so this variant is cheap to use for
// many cases in a row.
type LuaChecker struct {
	ReferencePath string
	Code          string
}

// NewLuaChecker constructs a LuaChecker from script code and the
// reference file path.
func NewLuaChecker(code, referencePath string) *LuaChecker {
	return &LuaChecker{ReferencePath: referencePath, Code: code}
}

// Check implements Checker. A fresh Lua state is created per call so
// concurrent checks (e.g. across test cases run in parallel by a
// caller) don't share interpreter state.
func (c *LuaChecker) Check(output io.Reader) error {
	got, err := io.ReadAll(output)
	if err != nil {
		return err
	}
	expected, err := os.ReadFile(c.ReferencePath)
	if err != nil {
		return err
	}

	state := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer state.Close()
	for _, pair := range []struct {
		n string
		f lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
	} {
		if err := state.CallByParam(lua.P{
			Fn:      state.NewFunction(pair.f),
			NRet:    0,
			Protect: true,
		}, lua.LString(pair.n)); err != nil {
			return err
		}
	}

	if err := state.DoString(c.Code); err != nil {
		return err
	}
	judgeFn, ok := state.GetGlobal("judge").(*lua.LFunction)
	if !ok {
		return wrongAnswer("lua checker script defines no judge function")
	}
	if err := state.CallByParam(lua.P{
		Fn:      judgeFn,
		NRet:    1,
		Protect: true,
	}, lua.LString(string(got)), lua.LString(string(expected))); err != nil {
		return err
	}
	ok2 := lua.LVAsBool(state.Get(-1))
	state.Pop(1)
	if !ok2 {
		return wrongAnswer("wrong answer per lua checker script")
	}
	return nil
}
