package main

import "html/template"

// bannerName is the key click counts for the Career Navigator banner are stored under.
const bannerName = "career-navigator"

// knownBanners lists the banner names /hits accepts.
var knownBanners = map[string]bool{
	bannerName: true,
}

type BannerHits struct {
	Banner string `db:"banner"`
	Hits   int    `db:"hits"`
}

type Page struct {
	LogoURL string
	Title   string
	Intro   string
	Banner  template.HTML
	CTAURL  string

	Hits int

	Error   string
	Success string

	OGPTitle       string
	OGPImage       string
	OGPDescription string

	Social map[string]string
}
