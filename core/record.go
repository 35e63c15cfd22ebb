package core

// Record is one log event as handed to a Handler. Module is the import path
// of the package that emitted the record; Target is the logical category,
// which defaults to Module when the caller did not override it.
type Record struct {
	Level   Level
	Module  string
	Target  string
	Message string
}

// EffectiveTarget returns Target, falling back to Module when no explicit
// target was set.
func (r *Record) EffectiveTarget() string {
	if r.Target == "" {
		return r.Module
	}
	return r.Target
}
