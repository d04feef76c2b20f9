package backend

// GateErrors extracts the error rate of every instruction in the backend
// target, keyed by gate name and qubit tuple. Entries the device reports but
// does not characterize map to nil.
func GateErrors(b Backend) map[string]map[string]*float64 {
	errors := make(map[string]map[string]*float64)
	target := b.Target()

	for gate, entries := range target {
		errors[gate] = make(map[string]*float64, len(entries))
		for qargs, props := range entries {
			if props != nil {
				e := props.Error
				errors[gate][qargs] = &e
			} else {
				errors[gate][qargs] = nil
			}
		}
	}

	return errors
}
