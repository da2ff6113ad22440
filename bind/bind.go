// Copyright (c) 2025, The v4go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bind models the group/slot binding contract between the
// shading stages and the external binding layer. Each stage declares
// the resources it reads at @group/@binding slots; Validate checks a
// supplied set against the declaration and fails fast on any mismatch.
// A missing or wrongly typed resource is never given a silent default.
package bind

import (
	"fmt"
	"sort"
	"strings"
)

// Kind is the resource type bound at a slot.
type Kind int32

const (
	// Uniform is a read-only uniform block, shared across invocations.
	Uniform Kind = iota

	// InstanceAttribute is a read-only per-instance vertex attribute.
	InstanceAttribute

	// SampledTexture is a read-only texture.
	SampledTexture

	// Sampler is the sampler paired with a texture.
	Sampler

	// StorageRead is a read-only storage buffer.
	StorageRead

	// StorageReadWrite is a writable storage buffer with
	// one-owner-per-index write semantics.
	StorageReadWrite

	// PushConstant is a per-draw immediate value delivered out of
	// band, scoped to a single draw or dispatch.
	PushConstant
)

func (kd Kind) String() string {
	switch kd {
	case Uniform:
		return "Uniform"
	case InstanceAttribute:
		return "InstanceAttribute"
	case SampledTexture:
		return "SampledTexture"
	case Sampler:
		return "Sampler"
	case StorageRead:
		return "StorageRead"
	case StorageReadWrite:
		return "StorageReadWrite"
	case PushConstant:
		return "PushConstant"
	}
	return "Kind(invalid)"
}

// Stage is a bitmask of the shader stages a variable is visible to.
type Stage int32

const (
	VertexShader Stage = 1 << iota
	FragmentShader
	ComputeShader
)

func (st Stage) String() string {
	var parts []string
	if st&VertexShader != 0 {
		parts = append(parts, "vertex")
	}
	if st&FragmentShader != 0 {
		parts = append(parts, "fragment")
	}
	if st&ComputeShader != 0 {
		parts = append(parts, "compute")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Var declares one resource a stage reads: its name, kind, slot, and
// the shader stages it is visible to.
type Var struct {
	Name    string
	Kind    Kind
	Group   int
	Binding int
	Stages  Stage
}

func (vr *Var) String() string {
	return fmt.Sprintf("%s: %s @group(%d) @binding(%d) [%s]", vr.Name, vr.Kind, vr.Group, vr.Binding, vr.Stages)
}

// Vars is the ordered set of variables a stage declares.
// Bindings are allocated sequentially within each group as vars are added.
type Vars struct {
	Vars []*Var

	nextBinding map[int]int
}

// Add declares a new variable in the given group, allocating the next
// binding slot within that group, and returns it.
func (vs *Vars) Add(name string, kind Kind, group int, stages Stage) *Var {
	if vs.nextBinding == nil {
		vs.nextBinding = make(map[int]int)
	}
	vr := &Var{Name: name, Kind: kind, Group: group, Binding: vs.nextBinding[group], Stages: stages}
	vs.nextBinding[group]++
	vs.Vars = append(vs.Vars, vr)
	return vr
}

// Find returns the declared variable with the given name, or nil.
func (vs *Vars) Find(name string) *Var {
	for _, vr := range vs.Vars {
		if vr.Name == name {
			return vr
		}
	}
	return nil
}

// Validate checks a supplied resource set against this declaration.
// Every declared variable must be supplied with a matching kind, and
// nothing may be supplied that is not declared. All problems are
// reported in one error, sorted by name; a non-nil error means the
// stage must not run.
func (vs *Vars) Validate(supplied map[string]Kind) error {
	var problems []string
	for _, vr := range vs.Vars {
		kind, ok := supplied[vr.Name]
		if !ok {
			problems = append(problems, fmt.Sprintf("missing resource %q at @group(%d) @binding(%d)", vr.Name, vr.Group, vr.Binding))
			continue
		}
		if kind != vr.Kind {
			problems = append(problems, fmt.Sprintf("resource %q is %s, want %s", vr.Name, kind, vr.Kind))
		}
	}
	for name := range supplied {
		if vs.Find(name) == nil {
			problems = append(problems, fmt.Sprintf("resource %q is not declared by this stage", name))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return fmt.Errorf("bind: %s", strings.Join(problems, "; "))
}

// StringDoc returns a listing of the declared variables, grouped by
// group number, for binding-table documentation.
func (vs *Vars) StringDoc() string {
	groups := map[int][]*Var{}
	var order []int
	for _, vr := range vs.Vars {
		if _, ok := groups[vr.Group]; !ok {
			order = append(order, vr.Group)
		}
		groups[vr.Group] = append(groups[vr.Group], vr)
	}
	sort.Ints(order)
	var sb strings.Builder
	for _, gi := range order {
		fmt.Fprintf(&sb, "Group: %d\n", gi)
		for _, vr := range groups[gi] {
			fmt.Fprintf(&sb, "    Var: %s\n", vr)
		}
	}
	return sb.String()
}
