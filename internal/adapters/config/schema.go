package config

// Projectfile represents the structure of objcbuild.yaml and objcbuild.toml.
type Projectfile struct {
	Plugins    []string                `yaml:"plugins" toml:"plugins"`
	SourceSets map[string]SourceSetDTO `yaml:"sourceSets" toml:"sourceSets"`
	J2ObjC     J2ObjCDTO               `yaml:"j2objc" toml:"j2objc"`
}

// SourceSetDTO lists the directories of one source set, relative to the project root.
type SourceSetDTO struct {
	Java      []string `yaml:"java" toml:"java"`
	Resources []string `yaml:"resources" toml:"resources"`
}

// J2ObjCDTO holds the translator settings.
type J2ObjCDTO struct {
	DestDir                   string   `yaml:"destDir" toml:"destDir"`
	TranslateArgs             []string `yaml:"translateArgs" toml:"translateArgs"`
	FilenameCollisionCheck    *bool    `yaml:"filenameCollisionCheck" toml:"filenameCollisionCheck"`
	CycleFinderArgs           []string `yaml:"cycleFinderArgs" toml:"cycleFinderArgs"`
	CycleFinderExpectedCycles int      `yaml:"cycleFinderExpectedCycles" toml:"cycleFinderExpectedCycles"`
	MinVersion                string   `yaml:"minVersion" toml:"minVersion"`
}
