package sdnaddr_test

import (
	"fmt"

	"github.com/0xsequence/sdnaddr"
)

func Example() {
	doc, err := sdnaddr.LoadFile("testdata/sdn_advanced.xml", nil)
	if err != nil {
		panic(err)
	}

	featureTypeID, err := doc.FeatureTypeID("XBT")
	if err != nil {
		panic(err)
	}

	for _, rec := range sdnaddr.Dedupe(doc.SanctionedAddresses(featureTypeID)) {
		fmt.Printf("%s;%s\n", rec.Address, rec.Name)
	}
	// Output:
	// 12QtD5BFwRsdNsAZY76UVE1xyCGNTojH9h;Unknown
	// 1BoatSLRHtKNngkdXEeobR76b53LETtpyT;Ivan Petrov;Vanya
	// 3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy;Ivan Petrov;Vanya
}

func ExampleScreener_IsSanctioned() {
	doc, err := sdnaddr.LoadFile("testdata/sdn_advanced.xml", nil)
	if err != nil {
		panic(err)
	}

	screener, err := sdnaddr.NewScreener(doc, "XBT", "ETH")
	if err != nil {
		panic(err)
	}

	fmt.Println(screener.IsSanctioned("1BoatSLRHtKNngkdXEeobR76b53LETtpyT"))
	fmt.Println(screener.IsSanctioned("1111111111111111111114oLvT2"))
	// Output:
	// true
	// false
}
