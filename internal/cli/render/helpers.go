package render

import (
	"math/big"
	"strings"

	"github.com/fatih/color"
)

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	return color.New(color.FgRed).Sprintf("❌ %s", message)
}

// FormatETH renders a wei amount as a trimmed decimal ether string
func FormatETH(wei *big.Int) string {
	if wei == nil {
		return "-"
	}

	s := wei.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) <= 18 {
		s = strings.Repeat("0", 18-len(s)+1) + s
	}

	whole := s[:len(s)-18]
	frac := strings.TrimRight(s[len(s)-18:], "0")

	out := whole
	if frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out + " ETH"
}

// ShortHash abbreviates a transaction hash for table display
func ShortHash(hash string) string {
	if len(hash) <= 14 {
		return hash
	}
	return hash[:10] + "…" + hash[len(hash)-4:]
}
