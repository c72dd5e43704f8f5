package host

import "strings"

type Status string

const (
	StatusPendente Status = "pendente"
	StatusAtivo    Status = "ativo"
	StatusInativo  Status = "inativo"
	StatusBanido   Status = "banido"
	// StatusDisponivel predates the pendente/ativo workflow; existing rows
	// still carry it and it counts as bookable.
	StatusDisponivel Status = "disponivel"
)

func (s Status) String() string {
	return string(s)
}

// Bookable reports whether the host may receive new bookings.
func (s Status) Bookable() bool {
	return s == StatusAtivo || s == StatusDisponivel
}

// SpeciesSet is the set of species a host accepts, matched case-insensitively.
type SpeciesSet struct {
	names []string
	index map[string]struct{}
}

func NewSpeciesSet(names []string) SpeciesSet {
	lowered := make([]string, 0, len(names))
	index := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if _, dup := index[n]; dup {
			continue
		}
		index[n] = struct{}{}
		lowered = append(lowered, n)
	}
	return SpeciesSet{names: lowered, index: index}
}

func (s SpeciesSet) Accepts(species string) bool {
	_, ok := s.index[strings.ToLower(strings.TrimSpace(species))]
	return ok
}

func (s SpeciesSet) IsEmpty() bool {
	return len(s.names) == 0
}

// Names returns the lowered species names in their original order, for error
// messages.
func (s SpeciesSet) Names() []string {
	return s.names
}

func (s SpeciesSet) String() string {
	return strings.Join(s.names, ", ")
}
