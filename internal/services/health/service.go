package health

// Service encapsulates health-related checks.
type Service struct {
	Env         string
	DBConnected bool
}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Status returns the health payload.
func (s *Service) Status() map[string]any {
	return map[string]any{
		"ok":  true,
		"env": s.Env,
		"db":  s.DBConnected,
	}
}
