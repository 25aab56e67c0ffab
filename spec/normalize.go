package spec

import "golang.org/x/text/unicode/norm"

// NormalizeNFC returns a copy of site with every text field in Unicode
// normalization form C. Loading never does this on its own; callers opt in.
func NormalizeNFC(site *SiteSpec) *SiteSpec {
	if site == nil {
		return nil
	}
	out := &SiteSpec{
		Title:    norm.NFC.String(site.Title),
		Tagline:  norm.NFC.String(site.Tagline),
		Sections: make([]Section, len(site.Sections)),
	}
	for i, section := range site.Sections {
		out.Sections[i] = Section{
			Heading: norm.NFC.String(section.Heading),
			Content: norm.NFC.String(section.Content),
		}
	}
	return out
}
