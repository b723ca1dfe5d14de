package modules

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dokzlo13/hsbk/internal/palette"
)

// PaletteModule exposes the named color store to Lua
type PaletteModule struct {
	store palette.Store
}

// NewPaletteModule creates a new palette module
func NewPaletteModule(store palette.Store) *PaletteModule {
	return &PaletteModule{store: store}
}

// Loader is the module loader for Lua
func (m *PaletteModule) Loader(L *lua.LState) int {
	RegisterColorType(L)

	mod := L.NewTable()

	L.SetField(mod, "save", L.NewFunction(m.save))
	L.SetField(mod, "get", L.NewFunction(m.get))
	L.SetField(mod, "list", L.NewFunction(m.list))
	L.SetField(mod, "delete", L.NewFunction(m.delete))

	L.Push(mod)
	return 1
}

// palette.save(name, color) -> {id=, name=, version=}
func (m *PaletteModule) save(L *lua.LState) int {
	name := L.CheckString(1)
	c := CheckColor(L, 2)

	entry, err := m.store.Save(name, c)
	if err != nil {
		L.RaiseError("palette.save(%q): %s", name, err.Error())
		return 0
	}

	tbl := L.NewTable()
	L.SetField(tbl, "id", lua.LString(entry.ID))
	L.SetField(tbl, "name", lua.LString(entry.Name))
	L.SetField(tbl, "version", lua.LNumber(entry.Version))
	L.Push(tbl)
	return 1
}

// palette.get(name) -> color | nil
func (m *PaletteModule) get(L *lua.LState) int {
	name := L.CheckString(1)

	entry, err := m.store.Get(name)
	if err != nil {
		L.RaiseError("palette.get(%q): %s", name, err.Error())
		return 0
	}
	if entry == nil {
		L.Push(lua.LNil)
		return 1
	}

	PushColor(L, entry.Color)
	return 1
}

// palette.list() -> {name, ...}
func (m *PaletteModule) list(L *lua.LState) int {
	entries, err := m.store.List()
	if err != nil {
		L.RaiseError("palette.list: %s", err.Error())
		return 0
	}

	tbl := L.NewTable()
	for _, e := range entries {
		tbl.Append(lua.LString(e.Name))
	}
	L.Push(tbl)
	return 1
}

// palette.delete(name) -> bool
func (m *PaletteModule) delete(L *lua.LState) int {
	name := L.CheckString(1)

	existed, err := m.store.Delete(name)
	if err != nil {
		L.RaiseError("palette.delete(%q): %s", name, err.Error())
		return 0
	}

	L.Push(lua.LBool(existed))
	return 1
}
