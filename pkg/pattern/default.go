package pattern

// DefaultSpecs is the built-in policy: the Selenium 4 migration removed
// the multi-positional-argument driver constructors and the
// chrome_options, firefox_options, and executable_path keywords.
// https://www.selenium.dev/blog/2022/legacy-protocol-support/
func DefaultSpecs() []Spec {
	return []Spec{
		{
			ID:      "legacy-positional-args",
			Regexp:  `webdriver\.[A-Za-z_]\w*\(\s*[^)=,\s][^)=,]*,`,
			Message: "legacy positional arguments to a webdriver constructor. Pass service= and options= keyword arguments instead",
		},
		{
			ID:      "legacy-chrome-options",
			Regexp:  `\bchrome_options\s*=`,
			Message: "the chrome_options keyword argument was removed in Selenium 4. Use options= instead",
		},
		{
			ID:      "legacy-firefox-options",
			Regexp:  `\bfirefox_options\s*=`,
			Message: "the firefox_options keyword argument was removed in Selenium 4. Use options= instead",
		},
		{
			ID:      "legacy-executable-path",
			Regexp:  `\bexecutable_path\s*=`,
			Message: "the executable_path keyword argument was removed in Selenium 4. Use a Service object instead",
		},
	}
}

// DefaultCatalog returns the catalog built from DefaultSpecs.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultSpecs())
	if err != nil {
		// The default specs are fixed at compile time.
		panic(err)
	}
	return c
}
