package server

// Server joins the HTTP servers of each resource.
type Server struct {
	CohortServer
	LayoutServer
}

func NewServer(
	cohortServer CohortServer,
	layoutServer LayoutServer,
) Server {
	return Server{
		CohortServer: cohortServer,
		LayoutServer: layoutServer,
	}
}
