package server

import (
	"fmt"
	"net"
	"strings"

	"github.com/rs/zerolog/log"
)

// Addresses returns the localhost base URL for port and one base URL per
// non-loopback IPv4 interface address.
func Addresses(port string) (string, []string) {
	port = strings.TrimPrefix(port, ":")
	local := fmt.Sprintf("http://localhost:%s", port)

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to list interface addresses")
		return local, nil
	}

	lans := make([]string, 0)
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipNet.IP.To4(); ip4 != nil {
			lans = append(lans, fmt.Sprintf("http://%s:%s", ip4, port))
		}
	}
	return local, lans
}
