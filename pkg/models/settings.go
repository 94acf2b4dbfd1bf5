package models

// Settings represents the application configuration
type Settings struct {
	Picker   PickerSettings   `yaml:"picker"`
	Upload   UploadSettings   `yaml:"upload"`
	URLCheck URLCheckSettings `yaml:"url_check"`
	Export   ExportSettings   `yaml:"export"`
}

// PickerSettings controls the emoji picker overlay
type PickerSettings struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Columns int `yaml:"columns"`
}

// UploadSettings bounds the image-upload path of the manager panel
type UploadSettings struct {
	MaxFileSize int64 `yaml:"max_file_size"`
}

// URLCheckSettings bounds the live existence check for remote image URLs
type URLCheckSettings struct {
	Enabled        bool `yaml:"enabled"`
	TimeoutSeconds int  `yaml:"timeout_seconds"`
}

// ExportSettings controls where exported collections are written
type ExportSettings struct {
	Path           string `yaml:"path"`
	FilenamePrefix string `yaml:"filename_prefix"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Picker: PickerSettings{
			Width:   48,
			Height:  14,
			Columns: 8,
		},
		Upload: UploadSettings{
			MaxFileSize: 2 * 1024 * 1024,
		},
		URLCheck: URLCheckSettings{
			Enabled:        true,
			TimeoutSeconds: 5,
		},
		Export: ExportSettings{
			Path:           "./",
			FilenamePrefix: "custom-emojis",
		},
	}
}
