package store

// seedDay is one fixed itinerary day: display metadata plus the day's
// single headline stop.
type seedDay struct {
	Day   int
	Date  string
	Color string
	Name  string
	Lat   float64
	Lon   float64
	Notes string
}

// seedTrip is a complete fixed dataset: one trip and its days.
type seedTrip struct {
	Name        string
	Description string
	Days        []seedDay
}

// defaultSeed is what schema setup provisions when the store is empty.
// Placeholder coordinates around New England, one stop per day.
var defaultSeed = seedTrip{
	Name:        "New England Adventure",
	Description: "A wonderful trip through New England states",
	Days: []seedDay{
		{1, "2024-09-15", "#ff6b6b", "Boston Common", 42.3551, -71.0656, "Historic park in downtown Boston"},
		{2, "2024-09-16", "#4ecdc4", "Freedom Trail", 42.3598, -71.0574, "Walking trail through historic sites"},
		{3, "2024-09-17", "#45b7d1", "Harvard University", 42.3770, -71.1167, "Famous university campus"},
		{4, "2024-09-18", "#96ceb4", "Cape Cod", 41.6688, -70.2962, "Beautiful coastal area"},
		{5, "2024-09-19", "#ffeaa7", "Mystic Seaport", 41.3712, -71.9662, "Maritime museum in Connecticut"},
		{6, "2024-09-20", "#dda0dd", "Acadia National Park", 44.3386, -68.2733, "Stunning national park in Maine"},
		{7, "2024-09-21", "#98d8c8", "White Mountains", 44.2619, -71.3015, "Beautiful mountain range in New Hampshire"},
		{8, "2024-09-22", "#f7dc6f", "Stowe", 44.4654, -72.6874, "Charming Vermont town"},
		{9, "2024-09-23", "#bb8fce", "Lake Champlain", 44.0979, -73.3544, "Large lake between Vermont and New York"},
		{10, "2024-09-24", "#85c1e9", "Newport Mansions", 41.4901, -71.3128, "Historic mansions in Rhode Island"},
		{11, "2024-09-25", "#f8c471", "Mohawk Trail", 42.6028, -72.9481, "Scenic drive through Massachusetts"},
		{12, "2024-09-26", "#82e0aa", "Lenox", 42.3557, -73.2712, "Cultural town in the Berkshires"},
		{13, "2024-09-27", "#f1948a", "Gillette Castle", 41.4240, -72.4267, "Unique castle in Connecticut"},
	},
}

// fallImport is the dataset the bulk importer resets the store to:
// the October 2024 fall foliage itinerary, route notes included.
var fallImport = seedTrip{
	Name:        "New England Fall Adventure",
	Description: "October 2024 Fall foliage trip through New England",
	Days: []seedDay{
		{1, "2024-10-03", "#ff6b6b", "Granville, MA", 42.0612, -72.8676, "Yale University (New Haven, CT); Sleeping Giant State Park (Hamden, CT); Harwinton Fairgrounds (Harwinton, CT); End at 1349 Main Rd, Granville, MA"},
		{2, "2024-10-04", "#4ecdc4", "White Mountains Region, NH", 43.9389, -71.6917, "Billings Farm & Museum Harvest Celebration; Start 1349 Main Rd, Granville, MA → End 218 Streeter Rd, Dorchester, NH"},
		{3, "2024-10-05", "#45b7d1", "Freeport, ME", 43.8570, -70.1028, "Freeport Fall Festival; Start 218 Streeter Rd, Dorchester, NH → End 134 Burnett Road, Freeport, ME"},
		{4, "2024-10-06", "#96ceb4", "Boothbay, ME", 43.8529, -69.6278, "Start 134 Burnett Road, Freeport, ME → End 553 Wiscasset Road, Boothbay, ME"},
		{5, "2024-10-07", "#ffeaa7", "Acadia (Schoodic Peninsula), ME", 44.4203, -68.0639, "Start 553 Wiscasset Road, Boothbay, ME → End Farview Dr, Winter Harbor, ME; Schoodic Woods Campground (Site A45)"},
		{6, "2024-10-08", "#dda0dd", "Camden area → New Portland, ME", 44.9553, -70.0747, "Start Farview Dr, Winter Harbor, ME → End 1100 Long Falls Dam Rd, New Portland, ME; Happy Horseshoe Campground"},
		{7, "2024-10-09", "#98d8c8", "Portland area (Gorham), ME", 43.6795, -70.4419, "Start 1100 Long Falls Dam Rd, New Portland, ME → End 680 Gray Rd, Gorham, ME; Sebago Sunrise Yurt (Hipcamp)"},
		{8, "2024-10-10", "#f7dc6f", "Salem/Boston, MA", 42.5195, -70.8967, "White Mountain Oktoberfest; Gondola Skyride Day Ticket; Start 680 Gray Rd, Gorham, ME → End 13 School Street, Everett (Boston area), MA"},
		{9, "2024-10-11", "#bb8fce", "Salem/Boston, MA", 42.5195, -70.8967, "Continue Boston/Salem stay; Hostel: Backpackers Hostel & Pub"},
		{10, "2024-10-12", "#85c1e9", "Cape Cod (Brewster), MA", 41.7598, -70.0833, "46th Annual Oktoberfest and 20th HONK! Parade; Start 13 School Street, Everett/Boston, MA → End 676 Harwich Rd, Brewster, MA; Sweetwater Forest"},
		{11, "2024-10-13", "#f8c471", "Newport area (Tiverton), RI", 41.6204, -71.2120, "Start 676 Harwich Rd, Brewster, MA → End 2753 Main Rd, Tiverton, RI; 8 Acres Homestead (Hipcamp)"},
		{12, "2024-10-14", "#82e0aa", "Mystic (Old Mystic), CT", 41.3712, -71.9662, "Mystic Seaport; Start 2753 Main Rd, Tiverton, RI → End 45 Campground Rd, Old Mystic, CT; Sun Outdoors Mystic"},
		{13, "2024-10-15", "#f1948a", "Brooklyn, NY", 40.6782, -73.9442, "Return trip; Start 45 Campground Rd, Old Mystic, CT → End 585 E21st Street, Brooklyn, NY"},
	},
}
