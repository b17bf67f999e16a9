package ast

import (
	"fmt"
	"unsafe"
)

// pool is a typed bump allocator. Elements are handed out from the current
// chunk; when it fills up a fresh chunk is made at 1.5x the previous size.
// Chunks are never reused or moved, so every pointer and slice handed out
// stays valid for as long as the owning Arena is reachable.
type pool[T any] struct {
	chunk []T // len(chunk) elements of the current chunk are in use
	next  int // capacity of the next chunk
	used  int // elements handed out over the pool's lifetime
}

func newPool[T any](size int) pool[T] {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		panic(fmt.Sprintf("ast: zero-sized allocation of %T", zero))
	}
	if size <= 0 {
		panic(fmt.Sprintf("ast: invalid chunk size %d for %T", size, zero))
	}
	return pool[T]{next: size}
}

func (p *pool[T]) grow(min int) {
	if p.next == 0 {
		// zero Arena
		p.next = 16
	}
	size := p.next
	if size < min {
		size = min
	}
	// make zeroes the chunk; nothing is ever written back into it except by
	// the constructor that owns the slot
	p.chunk = make([]T, 0, size)
	p.next += p.next >> 1
}

// alloc returns a pointer to one zeroed element.
func (p *pool[T]) alloc() *T {
	if len(p.chunk) == cap(p.chunk) {
		p.grow(1)
	}
	n := len(p.chunk)
	p.chunk = p.chunk[:n+1]
	p.used++
	return &p.chunk[n]
}

// dup copies src into contiguous pool storage. The result has its capacity
// capped at its length so an append by a reader reallocates instead of
// writing into the neighbouring slots. A zero-length src yields nil.
func (p *pool[T]) dup(src []T) []T {
	n := len(src)
	if n == 0 {
		return nil
	}
	if cap(p.chunk)-len(p.chunk) < n {
		p.grow(n)
	}
	start := len(p.chunk)
	p.chunk = p.chunk[:start+n]
	dst := p.chunk[start : start+n : start+n]
	copy(dst, src)
	p.used += n
	return dst
}

// Arena owns every node of one compilation unit. Nodes are never freed
// individually; dropping the last reference to the arena (and its nodes)
// releases them together.
//
// An Arena is not safe for concurrent construction. Once construction is
// complete the tree it owns is immutable and may be read from any number of
// goroutines.
//
// Children passed to a constructor must come from the same Arena. This is
// not checked.
type Arena struct {
	typespecs pool[TypeSpec]
	exprs     pool[Expr]
	stmts     pool[Stmt]
	decls     pool[Decl]

	declRefs     pool[*Decl]
	typespecRefs pool[*TypeSpec]
	exprRefs     pool[*Expr]
	stmtRefs     pool[*Stmt]
	names        pool[string]
	enumItems    pool[EnumItem]
	aggItems     pool[AggregateItem]
	params       pool[FuncParam]
	elseIfs      pool[ElseIf]
	cases        pool[SwitchCase]
}

func NewArena() *Arena {
	return &Arena{
		typespecs: newPool[TypeSpec](128),
		exprs:     newPool[Expr](512),
		stmts:     newPool[Stmt](256),
		decls:     newPool[Decl](64),

		declRefs:     newPool[*Decl](64),
		typespecRefs: newPool[*TypeSpec](64),
		exprRefs:     newPool[*Expr](256),
		stmtRefs:     newPool[*Stmt](256),
		names:        newPool[string](64),
		enumItems:    newPool[EnumItem](32),
		aggItems:     newPool[AggregateItem](32),
		params:       newPool[FuncParam](64),
		elseIfs:      newPool[ElseIf](16),
		cases:        newPool[SwitchCase](16),
	}
}

// Stats counts what an Arena has handed out.
type Stats struct {
	TypeSpecs int
	Exprs     int
	Stmts     int
	Decls     int
	// ListElems is the number of array elements copied in by constructors.
	ListElems int
}

func (s Stats) Nodes() int { return s.TypeSpecs + s.Exprs + s.Stmts + s.Decls }

func (s Stats) String() string {
	return fmt.Sprintf("typespecs=%d exprs=%d stmts=%d decls=%d list-elems=%d",
		s.TypeSpecs, s.Exprs, s.Stmts, s.Decls, s.ListElems)
}

func (a *Arena) Stats() Stats {
	return Stats{
		TypeSpecs: a.typespecs.used,
		Exprs:     a.exprs.used,
		Stmts:     a.stmts.used,
		Decls:     a.decls.used,
		ListElems: a.declRefs.used + a.typespecRefs.used + a.exprRefs.used + a.stmtRefs.used +
			a.names.used + a.enumItems.used + a.aggItems.used +
			a.params.used + a.elseIfs.used + a.cases.used,
	}
}

// File is one parsed source file. Decls and every node reachable from it are
// owned by Arena.
type File struct {
	Name  string
	Decls []*Decl
	Arena *Arena
}

// File copies decls into the arena.
func (a *Arena) File(name string, decls []*Decl) *File {
	return &File{Name: name, Decls: a.declRefs.dup(decls), Arena: a}
}
