package constant

type VideoStatus string

const (
	VideoStatusUploaded   VideoStatus = "UPLOADED"
	VideoStatusProcessing VideoStatus = "PROCESSING"
	VideoStatusReady      VideoStatus = "READY"
	VideoStatusFailed     VideoStatus = "FAILED"
)

func (s VideoStatus) Valid() bool {
	switch s {
	case VideoStatusUploaded, VideoStatusProcessing, VideoStatusReady, VideoStatusFailed:
		return true
	}
	return false
}

type StorageBackend string

const (
	StorageBackendMinIO StorageBackend = "minio"
	StorageBackendLocal StorageBackend = "local"
)

func (b StorageBackend) String() string {
	return string(b)
}

type Environment string

const (
	EnvironmentProduction Environment = "production"
	EnvironmentStaging    Environment = "staging"
	EnvironmentDevelop    Environment = "develop"
)

func (e Environment) String() string {
	return string(e)
}
