package term

import "github.com/google/uuid"

// Store allocates fresh bound variables and metavariables. Metavariable
// identities are assigned in creation order (a plain counter, not the
// uuid-backed display names) so that build_meta_type's "references only
// earlier ones" invariant can be checked by comparing IDs; display names
// use uuid to stay legible and collision-free even if rule-checking is
// later parallelised across symbols.
type Store struct {
	nextMeta uint64
}

// NewStore returns a Store with a fresh counter.
func NewStore() *Store { return &Store{} }

// FreshVar allocates a new bound variable with a uuid-suffixed debug name.
func (s *Store) FreshVar(hint string) *BVar {
	return &BVar{Name: freshName(hint)}
}

// FreshMeta allocates a new metavariable of the given arity and type.
// Name is a display hint; pass "" for an anonymous metavariable, in which
// case a uuid-suffixed placeholder is generated.
func (s *Store) FreshMeta(arity int, typ Term, name string) *MetaVar {
	id := s.nextMeta
	s.nextMeta++
	if name == "" {
		name = freshName("?m")
	}
	return &MetaVar{id: id, Arity: arity, Type: typ, Name: name}
}

// FreshEnvSlot allocates a new pattern-variable environment reference
// target for right-hand-side splicing (§4.4(c)).
func (s *Store) FreshEnvSlot(hint string) *EnvSlot {
	return &EnvSlot{Name: freshName(hint)}
}

func freshName(hint string) string {
	return hint + "_" + uuid.New().String()[:8]
}
