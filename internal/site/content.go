// Package site holds the fixed content of the Piper landing page.
package site

import "github.com/piper-lan/piper-site/pkg/carousel"

// Release download locations.
const (
	RepoURL     = "https://github.com/tuhlopuz1/piper"
	WindowsURL  = RepoURL + "/releases/download/release-piper/piper.exe"
	AndroidURL  = RepoURL + "/releases/download/release-piper/app-release.apk"
	ProductName = "Piper"
	Slogan      = "Talk without the internet"
	Tagline     = "A decentralized messenger for your local network: messages, files, voice and video calls with no servers and no sign-up."
)

// NavLink is an in-page navbar link.
type NavLink struct {
	Label string
	Href  string
}

// Step is one how-it-works step.
type Step struct {
	Number      string
	Title       string
	Description string
}

// Feature is one entry of the feature grid.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Platform is a download target. Unavailable platforms render as
// "coming soon" and carry no URL.
type Platform struct {
	Name      string
	Version   string
	Size      string
	URL       string
	Available bool
}

// FAQEntry is one question of the FAQ accordion.
type FAQEntry struct {
	Question string
	Answer   string
}

// Content is everything the page renders.
type Content struct {
	Nav         []NavLink
	Steps       []Step
	Features    []Feature
	Screenshots []carousel.Item
	Platforms   []Platform
	FAQ         []FAQEntry
	Footer      []NavLink
}

// Default returns the landing page content.
func Default() Content {
	return Content{
		Nav: []NavLink{
			{Label: "How it works", Href: "#how-it-works"},
			{Label: "Features", Href: "#features"},
			{Label: "Screenshots", Href: "#screenshots"},
			{Label: "FAQ", Href: "#faq"},
		},
		Steps: []Step{
			{Number: "01", Title: "Join the Wi-Fi", Description: "Make sure your devices share one local network: a home router, an office network or a mobile hotspot."},
			{Number: "02", Title: "Auto-discovery", Description: "Piper finds every device running the app on the network over mDNS. No manual setup."},
			{Number: "03", Title: "Start talking", Description: "Send messages and files, make voice and video calls. Everything flows directly between devices."},
			{Number: "04", Title: "Minimal latency", Description: "Direct P2P connections with no relay servers; speed is limited only by your network."},
		},
		Features: []Feature{
			{Icon: "message", Title: "Messages", Description: "Text chats delivered in real time"},
			{Icon: "file", Title: "Files", Description: "Send any file directly between devices"},
			{Icon: "phone", Title: "Voice calls", Description: "Clear audio with minimal LAN latency"},
			{Icon: "video", Title: "Video calls", Description: "HD video without cloud codecs"},
			{Icon: "users", Title: "Group chats", Description: "Talk with the whole team at once"},
			{Icon: "wifi-off", Title: "No internet", Description: "Runs on the local network only, fully offline"},
			{Icon: "shield", Title: "Privacy", Description: "Data never leaves the network, no analytics"},
			{Icon: "user-x", Title: "No sign-up", Description: "Launch the app and start talking"},
		},
		Screenshots: Screenshots(),
		Platforms: []Platform{
			{Name: "Windows", Version: "Windows 10/11", Size: "~25 MB", URL: WindowsURL, Available: true},
			{Name: "Android", Version: "Android 8.0+", Size: "~20 MB", URL: AndroidURL, Available: true},
			{Name: "macOS", Version: "macOS 12+"},
			{Name: "Linux", Version: "Ubuntu, Fedora, Arch"},
			{Name: "iOS", Version: "iOS 15+"},
		},
		FAQ: []FAQEntry{
			{Question: "Does Piper need the internet?", Answer: "No. Piper works only inside the local network (LAN/Wi-Fi). Discovery, messages, files and calls never need an internet connection."},
			{Question: "Which operating systems are supported?", Answer: "Windows and Android builds are available today. macOS, Linux and iOS are in progress; follow the project on GitHub."},
			{Question: "Is Piper safe to use?", Answer: "All data stays inside your local network. There are no cloud servers and no analytics, so conversations stay between the people on the network."},
			{Question: "How many people can be online at once?", Answer: "There is no hard limit; it depends on your router and devices. In practice dozens of participants work comfortably."},
			{Question: "Do I need an account?", Answer: "No. Install the app, enter a name and you are on the network. No accounts, phone numbers or email addresses."},
		},
		Footer: []NavLink{
			{Label: "GitHub", Href: RepoURL},
			{Label: "Download", Href: "#download"},
		},
	}
}

// Screenshots returns the carousel items in display order.
func Screenshots() []carousel.Item {
	return []carousel.Item{
		{Source: "screenshots/chat.png", Label: "Chat"},
		{Source: "screenshots/call.png", Label: "Call"},
		{Source: "screenshots/contacts.png", Label: "Contacts"},
		{Source: "screenshots/files.png", Label: "Files"},
	}
}

// AvailablePlatforms returns the platforms with a download link.
func (c Content) AvailablePlatforms() []Platform {
	var out []Platform
	for _, p := range c.Platforms {
		if p.Available {
			out = append(out, p)
		}
	}
	return out
}
