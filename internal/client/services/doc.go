// Package services shapes REST requests for the three resource families the
// admin client manages: openers, profiles and stories.
//
// Each service is a stateless facade over api.Client. A method issues exactly
// one request and returns the decoded record (nothing for deletes). Services
// neither cache nor retry nor validate; failures are wrapped with the
// operation name and returned unchanged otherwise, so callers can still match
// *api.Error and its sentinels.
package services
