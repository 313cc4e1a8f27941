package model

// NavigatorSection is a titled group of links on the navigator page.
type NavigatorSection struct {
	Title string          `yaml:"title"`
	Links []NavigatorLink `yaml:"links"`
}

// NavigatorLink is one curated link.
type NavigatorLink struct {
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}
