package ast

type TypeSpec struct {
	kind  TypeSpecKind
	name  string
	ptr   PtrSpec
	array ArraySpec
	fn    FuncSpec
}

type PtrSpec struct {
	Elem *TypeSpec
}

type ArraySpec struct {
	Elem *TypeSpec
	Size *Expr // nil for an unsized array
}

type FuncSpec struct {
	Params []*TypeSpec
	Ret    *TypeSpec // nil when the function returns nothing
}

func (t *TypeSpec) Kind() TypeSpecKind { return t.kind }
func (t *TypeSpec) Name() string       { return t.name }
func (t *TypeSpec) Ptr() PtrSpec       { return t.ptr }
func (t *TypeSpec) Array() ArraySpec   { return t.array }
func (t *TypeSpec) Func() FuncSpec     { return t.fn }

func (a *Arena) newTypeSpec(kind TypeSpecKind) *TypeSpec {
	t := a.typespecs.alloc()
	t.kind = kind
	return t
}

func (a *Arena) TypeName(name string) *TypeSpec {
	t := a.newTypeSpec(TypeSpecName)
	t.name = name
	return t
}

func (a *Arena) TypePtr(elem *TypeSpec) *TypeSpec {
	t := a.newTypeSpec(TypeSpecPtr)
	t.ptr.Elem = elem
	return t
}

func (a *Arena) TypeArray(elem *TypeSpec, size *Expr) *TypeSpec {
	t := a.newTypeSpec(TypeSpecArray)
	t.array.Elem = elem
	t.array.Size = size
	return t
}

func (a *Arena) TypeFunc(params []*TypeSpec, ret *TypeSpec) *TypeSpec {
	t := a.newTypeSpec(TypeSpecFunc)
	t.fn.Params = a.typespecRefs.dup(params)
	t.fn.Ret = ret
	return t
}
