package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/vboxctl"
	projectConfigDir = ".vboxctl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the vboxctl configuration by layering default, user, and
// project settings. Missing files are not errors; malformed files are.
func LoadConfig() (VboxctlConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return VboxctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return VboxctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a VboxctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (VboxctlConfig, error) {
	var config VboxctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return VboxctlConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return VboxctlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Only fields the
// overlay actually sets replace the base values.
func mergeConfigs(base, overlay VboxctlConfig) VboxctlConfig {
	merged := base

	if overlay.Manager.Path != "" {
		merged.Manager.Path = overlay.Manager.Path
	}
	if overlay.Manager.StorageController != "" {
		merged.Manager.StorageController = overlay.Manager.StorageController
	}

	if overlay.WizardDefaults.Name != "" {
		merged.WizardDefaults.Name = overlay.WizardDefaults.Name
	}
	if overlay.WizardDefaults.OSType != "" {
		merged.WizardDefaults.OSType = overlay.WizardDefaults.OSType
	}
	if overlay.WizardDefaults.MemoryMB != "" {
		merged.WizardDefaults.MemoryMB = overlay.WizardDefaults.MemoryMB
	}
	if overlay.WizardDefaults.CPUCount != "" {
		merged.WizardDefaults.CPUCount = overlay.WizardDefaults.CPUCount
	}
	if overlay.WizardDefaults.VideoMemoryMB != "" {
		merged.WizardDefaults.VideoMemoryMB = overlay.WizardDefaults.VideoMemoryMB
	}
	if overlay.WizardDefaults.DiskMB != "" {
		merged.WizardDefaults.DiskMB = overlay.WizardDefaults.DiskMB
	}

	return merged
}
