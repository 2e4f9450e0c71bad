package term

import (
	"fmt"
	"sync"

	"github.com/gitrdm/rewrite/internal/logx"
)

// Signature is a process-level registry of operator and variable identities
// shared across many terms, rules, and TRSs. A Signature value is a cheap
// handle onto shared, mutex-guarded state: copying a Signature never copies
// the registered symbols, only the pointer to their backing store, so two
// Signature values compare Equal exactly when they share that store.
type Signature struct {
	store *signatureStore
}

type operatorRecord struct {
	arity uint32
	name  string
	named bool
}

type variableRecord struct {
	name  string
	named bool
}

type signatureStore struct {
	mu        sync.RWMutex
	operators []operatorRecord
	variables []variableRecord
	log       logx.Logger
}

// Option configures a new Signature.
type Option func(*signatureStore)

// WithLogger injects a structured logger for symbol-registration tracing.
// Without this option the signature logs nothing (logx.Noop).
func WithLogger(l logx.Logger) Option {
	return func(s *signatureStore) {
		s.log = logx.Named(l, "term.signature")
	}
}

// New creates a fresh, empty signature. Signature creation is cheap.
func New(opts ...Option) Signature {
	store := &signatureStore{log: logx.Noop()}
	for _, opt := range opts {
		opt(store)
	}
	return Signature{store: store}
}

// Equal reports whether two signatures share the same backing store.
func (s Signature) Equal(other Signature) bool {
	return s.store == other.store
}

// IsZero reports whether s is the zero value (no backing store).
func (s Signature) IsZero() bool {
	return s.store == nil
}

// Clone returns a cheap shared-reference copy of s: the returned value
// wraps the same backing store, so operators and variables registered
// through either handle are visible through both. There is no deep copy;
// Clone exists so callers that want an explicit "give me a handle to share"
// step don't have to rely on Signature's zero-cost copy semantics implicitly.
func (s Signature) Clone() Signature {
	return Signature{store: s.store}
}

// Op is a handle to a registered operator: identity is (signature, index).
type Op struct {
	sig *signatureStore
	id  int
}

// Var is a handle to a registered variable. It doubles as the leaf case of
// Term (see term.go): a *Var is itself a well-formed, zero-argument Term.
type Var struct {
	sig *signatureStore
	id  int
}

// Equal reports whether two operator handles name the same registered symbol.
func (o Op) Equal(other Op) bool {
	return o.sig == other.sig && o.id == other.id
}

// Equal reports whether two variable handles name the same registered symbol.
func (v Var) Equal(other Var) bool {
	return v.sig == other.sig && v.id == other.id
}

// ID returns the zero-based registration index of the operator.
func (o Op) ID() int { return o.id }

// ID returns the zero-based registration index of the variable.
func (v Var) ID() int { return v.id }

// NewOp appends a new operator record and returns its handle. Arity is
// immutable once created; name is optional ("" means anonymous) and is not
// deduplicated against existing operators of the same name/arity.
func (s Signature) NewOp(arity uint32, name string) Op {
	store := s.store
	store.mu.Lock()
	id := len(store.operators)
	store.operators = append(store.operators, operatorRecord{arity: arity, name: name, named: name != ""})
	store.mu.Unlock()

	store.log.Debug("new_op", "id", id, "arity", arity, "name", name)
	return Op{sig: store, id: id}
}

// NewVar appends a new variable record and returns its handle.
func (s Signature) NewVar(name string) *Var {
	store := s.store
	store.mu.Lock()
	id := len(store.variables)
	store.variables = append(store.variables, variableRecord{name: name, named: name != ""})
	store.mu.Unlock()

	store.log.Debug("new_var", "id", id, "name", name)
	return &Var{sig: store, id: id}
}

// Operators returns a snapshot of every operator handle currently registered.
func (s Signature) Operators() []Op {
	store := s.store
	store.mu.RLock()
	defer store.mu.RUnlock()

	out := make([]Op, len(store.operators))
	for i := range store.operators {
		out[i] = Op{sig: store, id: i}
	}
	return out
}

// Variables returns a snapshot of every variable handle currently registered.
func (s Signature) Variables() []*Var {
	store := s.store
	store.mu.RLock()
	defer store.mu.RUnlock()

	out := make([]*Var, len(store.variables))
	for i := range store.variables {
		out[i] = &Var{sig: store, id: i}
	}
	return out
}

// OperatorName returns the operator's name and whether it was given one.
func (s Signature) OperatorName(o Op) (string, bool) {
	store := o.sig
	store.mu.RLock()
	defer store.mu.RUnlock()
	rec := store.operators[o.id]
	return rec.name, rec.named
}

// VariableName returns the variable's name and whether it was given one.
func (s Signature) VariableName(v *Var) (string, bool) {
	store := v.sig
	store.mu.RLock()
	defer store.mu.RUnlock()
	rec := store.variables[v.id]
	return rec.name, rec.named
}

// Arity returns the fixed arity of an operator.
func (s Signature) Arity(o Op) uint32 {
	store := o.sig
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.operators[o.id].arity
}

// FindBinaryDot returns the first registered operator named "." with arity 2,
// in signature order, per the open question documented in DESIGN.md (§9 of
// SPEC_FULL.md): multiple such operators are treated as aliases by taking
// the first.
func (s Signature) FindBinaryDot() (Op, bool) {
	store := s.store
	store.mu.RLock()
	defer store.mu.RUnlock()
	for i, rec := range store.operators {
		if rec.named && rec.name == "." && rec.arity == 2 {
			return Op{sig: store, id: i}, true
		}
	}
	return Op{}, false
}

// FindNullaryByName returns the first nullary operator whose name equals
// name, or creates one if none exists. Used by num_to_atom (pkg/rewrite) to
// intern decimal-numeral constants.
func (s Signature) FindNullaryByName(name string) Op {
	store := s.store
	store.mu.Lock()
	for i, rec := range store.operators {
		if rec.named && rec.name == name && rec.arity == 0 {
			store.mu.Unlock()
			return Op{sig: store, id: i}
		}
	}
	id := len(store.operators)
	store.operators = append(store.operators, operatorRecord{arity: 0, name: name, named: true})
	store.mu.Unlock()
	store.log.Debug("new_op", "id", id, "arity", 0, "name", name)
	return Op{sig: store, id: id}
}

func (o Op) String() string {
	return fmt.Sprintf("op#%d", o.id)
}

func (v *Var) String() string {
	return fmt.Sprintf("var#%d", v.id)
}
