//go:build armbe || arm64be || m68k || mips || mips64 || mips64p32 || ppc || ppc64 || s390 || s390x || shbe || sparc || sparc64

package nosandbox

// Linear memory is little-endian and loads copy bytes in host order.
var _ = bigEndianHostsAreNotSupportedWithSandboxDisabled
