package bench

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

const unknown = "unknown"

// SysInfo is the machine fingerprint stamped on every report.
type SysInfo struct {
	Platform string
	CPU      string
	Cores    int
	RAM      string
}

// CollectSysInfo queries the host. Probes that fail leave their field as
// "unknown"; timings are still meaningful without them.
func CollectSysInfo() SysInfo {
	info := SysInfo{Platform: unknown, CPU: unknown, Cores: runtime.NumCPU(), RAM: unknown}

	if hostStat, err := host.Info(); err == nil && hostStat.Platform != "" {
		info.Platform = fmt.Sprintf("%s %s", hostStat.Platform, hostStat.PlatformVersion)
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 && cpuStat[0].ModelName != "" {
		info.CPU = cpuStat[0].ModelName
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		info.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}

	return info
}

func (s SysInfo) String() string {
	return fmt.Sprintf("%s | %s x%d | %s", s.Platform, s.CPU, s.Cores, s.RAM)
}
