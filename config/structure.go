package config

// Config contains basic backend configuration.
type Config struct {
	BackendPublicUrl string
	BackendPort      int64
}
