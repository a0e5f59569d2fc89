package kyc_test

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/kyckit/pkg/kyc"
)

func ExampleService() {
	svc := kyc.New()

	masked, _ := svc.ObfuscatePersonalInfo("John.Doe@Gmail.com")
	sundays, _ := svc.CountWeekday("01-05-2021", "30-05-2021", time.Sunday)
	rank, _ := svc.AppendOrdinal(21)

	fmt.Println(masked)
	fmt.Println(sundays)
	fmt.Println(rank)
	// Output:
	// j*****e@gmail.com
	// 5
	// 21st
}
