package config

// GetDefaultConfig returns the built-in configuration. These values match
// the defaults the creation wizard shows in brackets when no config file
// overrides them.
func GetDefaultConfig() VboxctlConfig {
	return VboxctlConfig{
		Manager: ManagerSettings{
			Path:              "VBoxManage",
			StorageController: "SATA Controller",
		},
		WizardDefaults: WizardDefaults{
			Name:          "NewVM",
			OSType:        "Ubuntu_64",
			MemoryMB:      "1024",
			CPUCount:      "2",
			VideoMemoryMB: "128",
			DiskMB:        "10240",
		},
	}
}
