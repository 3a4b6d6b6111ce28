package store

import (
	"time"

	"brandistry/internal/model"
	"brandistry/internal/util"
)

// Bundled demo dataset, used whenever a collection has no stored value.

const seedPassword = "password123"

func seedHash() string {
	h, err := util.HashPassword(seedPassword)
	if err != nil {
		panic(err)
	}
	return h
}

func seedUsers() []model.User {
	hash := seedHash()
	return []model.User{
		{
			ID:             "u1",
			Name:           "Alex Rivera",
			Email:          "alex@brandistry.com",
			PasswordHash:   hash,
			Role:           model.RoleAdmin,
			Avatar:         "https://i.pravatar.cc/150?u=admin",
			Specialty:      "Operations",
			AccessRequests: []model.AccessRequest{},
		},
		{
			ID:                 "w1",
			Name:               "Maria Garcia",
			Email:              "maria@brandistry.com",
			PasswordHash:       hash,
			Role:               model.RoleWorker,
			Avatar:             "https://i.pravatar.cc/150?u=maria",
			Specialty:          "Senior Designer",
			AssignedProjectIDs: []string{"p1", "p3"},
			AssignedClientIDs:  []string{"c1"},
			AccessRequests:     []model.AccessRequest{},
		},
		{
			ID:                 "w2",
			Name:               "James Chen",
			Email:              "james@brandistry.com",
			PasswordHash:       hash,
			Role:               model.RoleWorker,
			Avatar:             "https://i.pravatar.cc/150?u=james",
			Specialty:          "Frontend Dev",
			AssignedProjectIDs: []string{"p3"},
			AssignedClientIDs:  []string{},
			AccessRequests:     []model.AccessRequest{},
		},
		{
			ID:                 "c1u",
			Name:               "Sarah Connor",
			Email:              "sarah@ecogoods.com",
			PasswordHash:       hash,
			Role:               model.RoleClient,
			Company:            "EcoGoods",
			Avatar:             "https://i.pravatar.cc/150?u=sarah",
			AssignedClientIDs:  []string{"c1"},
			AssignedProjectIDs: []string{"p2"},
			AccessRequests:     []model.AccessRequest{},
		},
	}
}

func seedClients() []model.Client {
	return []model.Client{
		{
			ID:              "c1",
			Name:            "Sarah Connor",
			Company:         "EcoGoods",
			Email:           "sarah@ecogoods.com",
			Phone:           "+1 (555) 123-4567",
			Industry:        "Retail",
			Status:          model.ClientActive,
			BudgetAllocated: 120000,
			InitialBrief:    "We want to rebrand our entire eco-friendly product line to appeal to Gen Z.",
		},
		{
			ID:              "c2",
			Name:            "John Smith",
			Company:         "TechFlow Inc",
			Email:           "john@techflow.com",
			Phone:           "+1 (555) 987-6543",
			Industry:        "Technology",
			Status:          model.ClientActive,
			BudgetAllocated: 250000,
		},
		{
			ID:              "c3",
			Name:            "Bruce Wayne",
			Company:         "Wayne Enterprises",
			Email:           "bruce@wayne.com",
			Industry:        "Conglomerate",
			Status:          model.ClientLead,
			BudgetAllocated: 50000,
		},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedProjects() []model.Project {
	return []model.Project{
		{
			ID:           "p1",
			ClientID:     "c2",
			Name:         "Nebula Rebrand",
			Description:  "Complete brand overhaul including logo, guidelines, and website.",
			Type:         model.ProjectWebDesign,
			Budget:       15000,
			Spent:        4500,
			StartDate:    day(2023, 9, 1),
			EndDate:      day(2023, 12, 1),
			Status:       model.ProjectActive,
			Progress:     35,
			Team:         []string{"u1", "w1"},
			Deliverables: []string{"Logo V1", "Brand Guidelines", "Homepage Mockup", "Mobile App UI"},
		},
		{
			ID:           "p2",
			ClientID:     "c1",
			Name:         "Q4 Marketing Campaign",
			Description:  "Holiday season social media push and ad spend management.",
			Type:         model.ProjectCampaign,
			Budget:       8000,
			Spent:        7800,
			StartDate:    day(2023, 10, 1),
			EndDate:      day(2023, 12, 31),
			Status:       model.ProjectReview,
			Progress:     95,
			Team:         []string{"w1"},
			Deliverables: []string{"Social Banners", "Ad Copy", "Landing Page", "Email Sequence"},
		},
		{
			ID:           "p3",
			ClientID:     "c3",
			Name:         "Mobile App MVP",
			Description:  "Initial prototype for the new security app.",
			Type:         model.ProjectStrategy,
			Budget:       45000,
			Spent:        12000,
			StartDate:    day(2023, 11, 1),
			EndDate:      day(2024, 3, 15),
			Status:       model.ProjectPlanning,
			Progress:     10,
			Team:         []string{"w2", "w1"},
			Deliverables: []string{"Architecture Diagram", "User Stories", "Wireframes"},
		},
	}
}

func seedTasks() []model.Task {
	return []model.Task{
		{ID: "t1", Title: "Design Homepage Mockups", Description: "Create 3 variations.", ProjectID: "p1", Assignee: "w1", Status: model.TaskDone, Priority: model.PriorityTaskHigh, DueDate: day(2023, 10, 10)},
		{ID: "t2", Title: "Setup CI/CD Pipeline", Description: "Github Actions setup.", ProjectID: "p3", Assignee: "w2", Status: model.TaskInProgress, Priority: model.PriorityTaskHigh, DueDate: day(2023, 11, 5)},
		{ID: "t3", Title: "Keyword Research", Description: "Competitor analysis.", ProjectID: "p2", Assignee: "w1", Status: model.TaskTodo, Priority: model.PriorityTaskMedium, DueDate: day(2023, 10, 15)},
		{ID: "t4", Title: "Client Feedback Review", Description: "Meeting notes integration.", ProjectID: "p1", Assignee: "u1", Status: model.TaskReview, Priority: model.PriorityTaskLow, DueDate: day(2023, 10, 12)},
	}
}

func seedAssets() []model.Asset {
	return []model.Asset{
		{
			ID:         "a1",
			Title:      "Nebula Homepage V1",
			Type:       model.AssetImage,
			URL:        "https://picsum.photos/seed/nebula/800/600",
			ProjectID:  "p1",
			ClientID:   "c2",
			UploadedBy: "u1",
			CreatedAt:  time.Date(2023, 10, 15, 10, 0, 0, 0, time.UTC),
			Status:     model.AssetDelivered,
			Version:    1,
			Comments:   []model.AssetComment{},
			Tags:       []string{"v1", "homepage"},
		},
		{
			ID:         "a2",
			Title:      "Q4 Social Banner",
			Type:       model.AssetImage,
			URL:        "https://picsum.photos/seed/social/800/400",
			ProjectID:  "p2",
			ClientID:   "c1",
			UploadedBy: "w1",
			CreatedAt:  time.Date(2023, 10, 18, 14, 30, 0, 0, time.UTC),
			Status:     model.AssetPendingReview,
			Version:    2,
			Comments: []model.AssetComment{
				{ID: "cm1", UserID: "w1", UserName: "Maria Garcia", Content: "Updated per client request.", Timestamp: time.Date(2023, 10, 18, 14, 35, 0, 0, time.UTC)},
			},
			Tags: []string{"social", "marketing"},
		},
		{
			ID:         "a3",
			Title:      "App Architecture Diagram",
			Type:       model.AssetDocument,
			URL:        "https://picsum.photos/seed/arch/600/800",
			ProjectID:  "p3",
			ClientID:   "c3",
			UploadedBy: "w2",
			CreatedAt:  time.Date(2023, 10, 20, 9, 15, 0, 0, time.UTC),
			Status:     model.AssetChangesRequested,
			Version:    1,
			Comments: []model.AssetComment{
				{ID: "cm2", UserID: "u1", UserName: "Alex Rivera", Content: "Please add the load balancer layer.", Timestamp: time.Date(2023, 10, 21, 9, 0, 0, 0, time.UTC)},
			},
			Tags: []string{"technical", "diagram"},
		},
		{
			ID:         "a4",
			Title:      "Q4 Ad Copy",
			Type:       model.AssetDocument,
			URL:        "https://picsum.photos/seed/copy/600/800",
			ProjectID:  "p2",
			ClientID:   "c1",
			UploadedBy: "w1",
			CreatedAt:  time.Date(2023, 10, 22, 9, 15, 0, 0, time.UTC),
			Status:     model.AssetDelivered,
			Version:    1,
			Comments:   []model.AssetComment{},
			Tags:       []string{"copy", "marketing"},
		},
	}
}

func seedChats() []model.ChatSession {
	msgs := []model.ChatMessage{
		{ID: "m1", SenderID: "u1", Content: "Hey Maria, how is the Nebula project going?", Timestamp: time.Date(2023, 10, 25, 10, 0, 0, 0, time.UTC), IsRead: true},
		{ID: "m2", SenderID: "w1", Content: "Going well! Just uploaded the new V1 designs.", Timestamp: time.Date(2023, 10, 25, 10, 5, 0, 0, time.UTC)},
	}
	last := msgs[len(msgs)-1]
	return []model.ChatSession{
		{
			ID:           "chat_demo_1",
			Participants: []string{"u1", "w1"},
			Tags:         []string{"priority", "nebula"},
			ProjectID:    "p1",
			Messages:     msgs,
			UnreadCount:  map[string]int{"u1": 1, "w1": 0},
			LastMessage:  &last,
		},
	}
}
