package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	InvalidCohort  failure.ErrorCode = "InvalidCohort"
	CohortNotFound failure.ErrorCode = "CohortNotFound"
	InvalidRoster  failure.ErrorCode = "InvalidRoster"

	InvalidBallot     failure.ErrorCode = "InvalidBallot"
	InvalidScore      failure.ErrorCode = "InvalidScore"
	InvalidBlock      failure.ErrorCode = "InvalidBlock"
	BallotAlreadyCast failure.ErrorCode = "BallotAlreadyCast"

	InvalidColumns      failure.ErrorCode = "InvalidColumns"
	ArrangementNotFound failure.ErrorCode = "ArrangementNotFound"
)
