// Package content holds the static portfolio payload rendered by the
// interface and exported by the CLI. The data is compiled in; there is
// no remote fetch and no mutation at runtime.
package content

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Profile is the owner identity shown in the hero and contact sections.
type Profile struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Tagline  string `json:"tagline"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	Location string `json:"location"`
}

// Social is an outbound link rendered in the hero and contact sections.
type Social struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Experience is one professional entry on the journey timeline.
type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// CommunityRecord is one volunteering or organizing entry.
type CommunityRecord struct {
	Role        string   `json:"role"`
	Org         string   `json:"org"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
}

// Project is one portfolio project card.
type Project struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Stats       string   `json:"stats"`
	Tech        []string `json:"tech"`
	Featured    bool     `json:"featured"`
}

// ID returns a stable identifier derived from the project title.
func (p Project) ID() string {
	return slug(p.Title)
}

// ID returns a stable identifier derived from the organization and role.
func (c CommunityRecord) ID() string {
	return slug(fmt.Sprintf("%s %s", c.Org, c.Role))
}

// ID returns a stable identifier derived from the company and role.
func (e Experience) ID() string {
	return slug(fmt.Sprintf("%s %s", e.Company, e.Role))
}

func slug(s string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, s)

	parts := lo.Filter(strings.Split(mapped, "-"), func(p string, _ int) bool {
		return p != ""
	})
	return strings.Join(parts, "-")
}

// Payload bundles everything the interface renders.
type Payload struct {
	Profile   Profile           `json:"profile"`
	Socials   []Social          `json:"socials"`
	Projects  []Project         `json:"projects"`
	Journey   []Experience      `json:"journey"`
	Community []CommunityRecord `json:"community"`
}

// Default returns the compiled-in portfolio payload.
func Default() Payload {
	return Payload{
		Profile: Profile{
			Name:     "Parag Sharma",
			Role:     "Product Engineer & Developer",
			Tagline:  "Engineering intelligence with pixel-perfect precision.",
			Bio:      "Final year B.Tech CSE student and Ex-President of Google Developer Groups (GDG) on Campus. I bridge the gap between complex AI logic and intuitive user experiences. Winner of Ideathon Taiwan 2025. Passionate about Anime, Content Creation, and Building Scalable Systems.",
			Email:    "sharmaparag2004@gmail.com",
			Location: "India",
		},
		Socials: []Social{
			{Name: "GitHub", URL: "https://github.com/p09s"},
			{Name: "LinkedIn", URL: "https://linkedin.com/in/p09s"},
			{Name: "Email", URL: "mailto:sharmaparag2004@gmail.com"},
		},
		Projects: []Project{
			{
				Title:       "LinkFluence",
				Category:    "Web Development & SaaS",
				Description: "A collaborative marketplace bridging the gap between micro-influencers and brands. Features automated matchmaking and secure campaign management.",
				Stats:       "Building",
				Tech:        []string{"MongoDB", "Express.js", "React", "Node.js"},
				Featured:    true,
			},
			{
				Title:       "Silent Voice",
				Category:    "AI & Computer Vision",
				Description: "AI-powered sign language translation system using computer vision and speech synthesis. Winner, Ideathon Taiwan 2025.",
				Stats:       "25% Latency Reduction",
				Tech:        []string{"Python", "OpenCV", "TensorFlow", "Computer Vision", "AI/ML", "Flutter"},
				Featured:    true,
			},
			{
				Title:       "Orbcura",
				Category:    "Accessibility & AI",
				Description: "Assistive app for the visually impaired featuring real-time AI image detection and voice-guided UPI payments.",
				Stats:       "FY2024 INNO-vation Nominee",
				Tech:        []string{"Flutter", "ML Kit", "UPI API", "Firebase"},
				Featured:    true,
			},
			{
				Title:       "Aqua Watch",
				Category:    "Disaster Management",
				Description: "Community-driven flood management system with crowd-sourced reporting and interactive risk mapping.",
				Stats:       "Real-time Risk Analytics",
				Tech:        []string{"Flutter", "Google Maps API", "Firebase"},
				Featured:    false,
			},
			{
				Title:       "HerSphere",
				Category:    "HealthTech",
				Description: "Pregnancy health companion with ML-based trimester recommendations.",
				Stats:       "First Project",
				Tech:        []string{"Flutter", "Analytics", "Firebase"},
				Featured:    false,
			},
		},
		Journey: []Experience{
			{
				Company:     "Google Developer Groups (GDG) on Campus",
				Role:        "President",
				Period:      "Sept 2024 - July 2025",
				Description: "Led 30+ developers to build SD+AI projects. Organized tech workshops for 1000+ participants. Established Git-based workflows and Agile practices.",
			},
			{
				Company:     "TriColor Initiatives Pvt. Ltd.",
				Role:        "Salesforce Intern",
				Period:      "May 2024 - Jun 2024",
				Description: "Developed AI-powered customer insights dashboards and automated CRM flows using Apex and Lightning Components.",
			},
		},
		Community: []CommunityRecord{
			{
				Role:        "Organizer",
				Org:         "GDG HACKS",
				Period:      "Dec 2024 - Apr 2025",
				Description: "Orchestrated a national-level hackathon with 400+ participants and 150 teams. Managed logistics for an intense innovation challenge.",
				Tags:        []string{"Management", "Event Planning"},
				Featured:    true,
			},
			{
				Role:        "Student Coordinator",
				Org:         "GDG Hackureka",
				Period:      "Feb 2025",
				Description: "Coordinated a 7-hour intense hackathon challenge. Successfully managed 400+ participants from across the country.",
				Tags:        []string{"Leadership", "Operations"},
				Featured:    false,
			},
			{
				Role:        "Facilitator",
				Org:         "GDSC MM(DU) - GenAI",
				Period:      "May 2024",
				Description: "Led a month-long GenAI Google Cloud program. Reviewed applications for 150 students and guided them through cloud concepts.",
				Tags:        []string{"Mentorship", "GenAI"},
				Featured:    false,
			},
			{
				Role:        "Co-Facilitator",
				Org:         "GDSC MM(DU) - Android",
				Period:      "Dec 2023 - Jan 2024",
				Description: "Taught Android Development to 70-100 students under the 'Discover, Design and Develop' program.",
				Tags:        []string{"Teaching", "Android"},
				Featured:    true,
			},
		},
	}
}
