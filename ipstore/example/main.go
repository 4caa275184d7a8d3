package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aglyzov/go-ipstore/addrkey"
	"github.com/aglyzov/go-ipstore/ipstore"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	s := ipstore.New[string](ipstore.WithLogger(logger), ipstore.WithCompression())

	added, err := s.Load([]ipstore.Entry[string]{
		{Address: "192.168.1.1", Label: "internal"},
		{Address: "10.0.0.7", Label: "vpn"},
		{Address: "10.0.0.3", Label: "vpn"},
		{Address: "2001:db8::1", Label: "doc"},
		{Address: "not-an-ip", Label: "oops"},
	})
	fmt.Printf("loaded %d entries, err=%v\n", added, err)

	ok, _ := s.UpdateIPInfo("192.168.1.1", "blocked")
	fmt.Printf("update 192.168.1.1 -> %v\n", ok)

	ok, _ = s.UpdateIPInfo("10.9.9.9", "x")
	fmt.Printf("update 10.9.9.9    -> %v\n", ok)

	s.Family(addrkey.V4).DebugDump()

	println("------")

	s.Walk(func(address string, label string) bool {
		fmt.Printf("%-16s %s\n", address, label)
		return true
	})
}
