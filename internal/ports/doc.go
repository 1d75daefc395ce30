// Package ports declares the seams of the todo service. Handlers call
// TodoService, the service calls TodoRepository, and front ends (the query
// cache and todoctl) call TodoAPI, which the remote-call bindings implement.
package ports
