// Package environment names the deployment environments a service can run in
// and normalises the short aliases commonly found in configuration files.
//
//	env := environment.Parse(os.Getenv("KYC_ENV")) // "prod" -> Production
//	if env.IsProduction() {
//	    // ...
//	}
//
// Unknown or empty values resolve to Development.
package environment
