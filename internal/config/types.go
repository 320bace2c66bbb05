package config

// VboxctlConfig is the top-level configuration structure for vboxctl.
type VboxctlConfig struct {
	Manager        ManagerSettings `yaml:"manager"`
	WizardDefaults WizardDefaults  `yaml:"wizardDefaults"`
}

// ManagerSettings describes how the external VirtualBox management tool is
// invoked.
type ManagerSettings struct {
	// Path is the VBoxManage binary to run. It may be a bare name resolved
	// via PATH or an absolute path.
	Path string `yaml:"path,omitempty"`
	// StorageController is the name given to the SATA controller created
	// for new VMs.
	StorageController string `yaml:"storageController,omitempty"`
}

// WizardDefaults holds the default value offered for each field of the VM
// creation wizard. All values are strings and are passed through to
// VBoxManage verbatim; no numeric validation happens on this side.
type WizardDefaults struct {
	Name          string `yaml:"name,omitempty"`
	OSType        string `yaml:"osType,omitempty"`
	MemoryMB      string `yaml:"memoryMB,omitempty"`
	CPUCount      string `yaml:"cpuCount,omitempty"`
	VideoMemoryMB string `yaml:"videoMemoryMB,omitempty"`
	DiskMB        string `yaml:"diskMB,omitempty"`
}
