package jdk

// Registry aggregates JDK records from the system java_home database and a
// jenv versions directory.
type Registry struct {
	system  func() ([]Record, error)
	managed func() ([]Record, error)
}

// NewRegistry creates a registry scanning the platform java_home database and
// the jenv installation rooted at jenvRoot.
func NewRegistry(jenvRoot string) *Registry {
	return &Registry{
		system:  SystemJDKs,
		managed: func() ([]Record, error) { return JenvJDKs(jenvRoot) },
	}
}

// List returns every discovered JDK: system records first, jenv records
// second, each in its enumerator's scan order. The same physical installation
// may be reported by both sources; no de-duplication is attempted.
func (r *Registry) List() ([]Record, error) {
	system, err := r.system()
	if err != nil {
		return nil, err
	}

	managed, err := r.managed()
	if err != nil {
		return nil, err
	}

	return append(system, managed...), nil
}
