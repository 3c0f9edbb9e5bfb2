// internal/seed/seed.go
package seed

import (
    "time"

    "github.com/nxthub/influencer-hub-backend/internal/model"
)

// Baseline dataset used to initialize an empty store. Repositories also fall
// back to these when a stored blob fails to parse.

func Users() []model.User {
    return []model.User{
        {
            ID:         "u1",
            Name:       "Marketing Manager",
            Email:      "marketing@nxthub.com",
            Role:       model.RoleManager,
            Department: "Marketing",
            Avatar:     "https://picsum.photos/100/100?random=1",
        },
        {
            ID:         "u2",
            Name:       "Sales Manager",
            Email:      "sales@nxthub.com",
            Role:       model.RoleManager,
            Department: "Sales",
            Avatar:     "https://picsum.photos/100/100?random=2",
        },
        {
            ID:         "u3",
            Name:       "Executive Vignesh",
            Email:      "exec@nxthub.com",
            Role:       model.RoleExecutive,
            Department: "Headquarters",
            Avatar:     "https://picsum.photos/100/100?random=3",
        },
    }
}

func Influencers() []model.Influencer {
    return []model.Influencer{
        {
            ID:            "i1",
            Name:          "Vignesh Sadula",
            Handle:        "@vignesh_vibes",
            Followers:     "1.2M",
            Category:      "Fashion",
            Avatar:        "https://picsum.photos/200/200?random=4",
            Email:         "vignesh.sadula@example.com",
            Mobile:        "+91 98765 43210",
            Location:      "Hyderabad",
            Language:      "Telugu",
            LastPricePaid: 23456,
            LastPromoDate: "06 Nov 2025",
            Platforms:     &model.Platforms{Instagram: "vignesh_vibes", YouTube: "VigneshVlogs"},
            CreatedBy:     "marketing@nxthub.com",
        },
        {
            ID:            "i2",
            Name:          "Sarah Jones",
            Handle:        "@sarahj_style",
            Followers:     "500K",
            Category:      "Lifestyle",
            Avatar:        "https://picsum.photos/200/200?random=5",
            Email:         "sarah.j@example.com",
            Mobile:        "+1 555 0199",
            Location:      "London",
            Language:      "English",
            LastPricePaid: 15000,
            LastPromoDate: "20 Oct 2025",
            Platforms:     &model.Platforms{Instagram: "sarahj_style"},
            CreatedBy:     "sales@nxthub.com",
        },
        {
            ID:            "i3",
            Name:          "Mike Chen",
            Handle:        "@mike_eats",
            Followers:     "850K",
            Category:      "Food",
            Avatar:        "https://picsum.photos/200/200?random=6",
            Email:         "mike.chen@foodie.com",
            Mobile:        "+1 555 0123",
            Location:      "San Francisco",
            Language:      "Chinese/English",
            LastPricePaid: 18500,
            LastPromoDate: "01 Nov 2025",
            Platforms:     &model.Platforms{Instagram: "mike_eats_official", YouTube: "MikeChenEats"},
            CreatedBy:     "marketing@nxthub.com",
        },
        {
            ID:            "i4",
            Name:          "Alex Doe",
            Handle:        "@alex_games",
            Followers:     "2.1M",
            Category:      "Gaming",
            Avatar:        "https://picsum.photos/200/200?random=7",
            Email:         "alex@gaming.net",
            Mobile:        "+44 7700 900077",
            Location:      "Manchester",
            Language:      "English",
            LastPricePaid: 45000,
            LastPromoDate: "15 Sep 2025",
            Platforms:     &model.Platforms{Instagram: "alex_irl", YouTube: "AlexPlays"},
            CreatedBy:     "exec@nxthub.com",
        },
    }
}

func Campaigns() []model.Campaign {
    return []model.Campaign{
        {
            ID:           "c1",
            Name:         "Q3 Product Launch",
            InfluencerID: "i1",
            Department:   "Marketing",
            Status:       model.StatusPending,
            Budget:       5000,
            StartDate:    "2023-10-01",
            EndDate:      "2023-10-31",
            Deliverables: "1 Instagram Reel, 2 Stories",
            LastUpdated:  ts("2023-09-25T10:00:00Z"),
        },
        {
            ID:           "c2",
            Name:         "Holiday Sales Push",
            InfluencerID: "i2",
            Department:   "Sales",
            Status:       model.StatusApproved,
            Budget:       12000,
            StartDate:    "2023-11-15",
            EndDate:      "2023-12-25",
            Deliverables: "3 YouTube Integrations",
            LastUpdated:  ts("2023-10-15T14:30:00Z"),
        },
        {
            ID:           "c3",
            Name:         "Employee Branding",
            InfluencerID: "i3",
            Department:   "HR",
            Status:       model.StatusRejected,
            Budget:       2000,
            StartDate:    "2023-09-01",
            EndDate:      "2023-09-30",
            Deliverables: "1 LinkedIn Post",
            LastUpdated:  ts("2023-08-20T09:15:00Z"),
        },
        {
            ID:           "c4",
            Name:         "Tech Review Series",
            InfluencerID: "i4",
            Department:   "Marketing",
            Status:       model.StatusApproved,
            Budget:       8000,
            StartDate:    "2023-10-05",
            EndDate:      "2023-11-05",
            Deliverables: "1 Dedicated YouTube Video",
            LastUpdated:  ts("2023-10-01T16:45:00Z"),
        },
        {
            ID:           "c5",
            Name:         "Operations Audit Vlog",
            InfluencerID: "i1",
            Department:   "Operations",
            Status:       model.StatusPending,
            Budget:       1500,
            StartDate:    "2023-10-10",
            EndDate:      "2023-10-20",
            Deliverables: "1 Instagram Post",
            LastUpdated:  ts("2023-10-05T11:20:00Z"),
        },
    }
}

func ts(s string) *time.Time {
    t, err := time.Parse(time.RFC3339, s)
    if err != nil {
        panic(err)
    }
    return &t
}
