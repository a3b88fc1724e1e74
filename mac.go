package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var macRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// formatMAC renders octets as lowercase hex pairs joined by colons.
func formatMAC(octets []byte) string {
	parts := make([]string, len(octets))
	for i, octet := range octets {
		parts[i] = fmt.Sprintf("%02x", octet)
	}
	return strings.Join(parts, ":")
}

// randomMAC generates a random six-octet MAC address. The low bit of the
// first octet is cleared so the address is always unicast (IEEE 802).
func randomMAC() string {
	mac := make([]byte, 6)
	macRand.Read(mac)
	mac[0] &= 0xfe
	return formatMAC(mac)
}
