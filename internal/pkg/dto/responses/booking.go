package responses

type Booking struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
}

type SaveBookings struct {
	Success    bool `json:"success"`
	ItemsSaved int  `json:"itemsSaved"`
}
