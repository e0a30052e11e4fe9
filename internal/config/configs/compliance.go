package configs

// Compliance locates the content policy. An empty PolicyPath uses the
// policy embedded in the binary.
type Compliance struct {
	PolicyPath string `env:"POLICY_PATH"`
}
