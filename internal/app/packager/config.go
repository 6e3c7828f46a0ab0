package packagerapp

import (
	pkgdomain "github.com/10Narratives/faaspack/internal/domains/packaging"
)

type Config struct {
	Env           string              `yaml:"env" env:"FAASPACK_ENV" env-default:"dev"`
	Supervisor    SupervisorConfig    `yaml:"supervisor"`
	ObjectStorage ObjectStorageConfig `yaml:"object_storage"`
	Functions     []FunctionConfig    `yaml:"functions"`
}

type SupervisorConfig struct {
	Version string `yaml:"version" env:"FAASPACK_SUPERVISOR_VERSION" env-default:"1.4.2"`
}

type ObjectStorageConfig struct {
	Endpoint         string `yaml:"endpoint" env:"FAASPACK_OS_ENDPOINT"`
	User             string `yaml:"user" env:"FAASPACK_OS_USER"`
	Password         string `yaml:"password" env:"FAASPACK_OS_PASSWORD"`
	UseSSL           bool   `yaml:"use_ssl" env:"FAASPACK_OS_USE_SSL" env-default:"false"`
	DeploymentBucket string `yaml:"deployment_bucket" env:"FAASPACK_OS_DEPLOYMENT_BUCKET"`
}

// FunctionConfig is one function entry of the yaml file. Empty optional
// fields stay empty; defaults are filled in only when the entry becomes a
// DeploymentConfig.
type FunctionConfig struct {
	Name             string            `yaml:"name"`
	Image            string            `yaml:"image"`
	ImageFile        string            `yaml:"image_file"`
	InitScript       string            `yaml:"init_script"`
	ExtraPayload     string            `yaml:"extra_payload"`
	ConfigPath       string            `yaml:"config_path"`
	OutputPath       string            `yaml:"output_path"`
	MaxPayloadSize   int64             `yaml:"max_payload_size"`
	MaxS3PayloadSize int64             `yaml:"max_s3_payload_size"`
	Environment      map[string]string `yaml:"environment"`
	KeepWorkDir      bool              `yaml:"keep_workdir"`
}

// DeploymentConfig materializes the entry for one build. The environment map
// is copied so two builds of the same entry never share mutable state.
func (fc *FunctionConfig) DeploymentConfig(deploymentBucket string) *pkgdomain.DeploymentConfig {
	maxPayload := fc.MaxPayloadSize
	if maxPayload == 0 {
		maxPayload = pkgdomain.DefaultMaxPayloadSize
	}
	maxS3Payload := fc.MaxS3PayloadSize
	if maxS3Payload == 0 {
		maxS3Payload = pkgdomain.DefaultMaxS3PayloadSize
	}

	output := fc.OutputPath
	if output == "" {
		output = fc.Name + ".zip"
	}

	env := make(map[string]string, len(fc.Environment))
	for k, v := range fc.Environment {
		env[k] = v
	}

	return &pkgdomain.DeploymentConfig{
		FunctionName:     fc.Name,
		Image:            fc.Image,
		ImageFile:        fc.ImageFile,
		InitScript:       fc.InitScript,
		ExtraPayload:     fc.ExtraPayload,
		ConfigPath:       fc.ConfigPath,
		DeploymentBucket: deploymentBucket,
		MaxPayloadSize:   maxPayload,
		MaxS3PayloadSize: maxS3Payload,
		ArtifactPath:     output,
		Environment:      env,
		KeepWorkDir:      fc.KeepWorkDir,
	}
}
