package blockchain

import "github.com/lmittmann/w3"

// Functions called on deployed contracts without loading their artifacts
var (
	funcName2 = w3.MustNewFunc("name2()", "string")

	// UUPSUpgradeable.upgradeToAndCall(newImplementation, data)
	funcUpgradeToAndCall = w3.MustNewFunc(
		"upgradeToAndCall(address,bytes)", "",
	)
	// ProxyAdmin.upgradeAndCall(proxy, implementation, data)
	funcUpgradeAndCall = w3.MustNewFunc(
		"upgradeAndCall(address,address,bytes)", "",
	)

	funcResolve = w3.MustNewFunc(
		"resolve(bytes32,bool)", "address",
	)
	funcAddressManager = w3.MustNewFunc("addressManager()", "address")
	funcSetAddress     = w3.MustNewFunc(
		"setAddress(uint64,bytes32,address)", "",
	)
)
