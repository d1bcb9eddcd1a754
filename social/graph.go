// Package social models an undirected friendship network between users and
// answers shortest friendship path queries over it.
package social

import (
	"errors"
	"fmt"
	"github.com/ejacobg/graphwalk/graph"
	"github.com/ejacobg/graphwalk/inmem"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"sort"
)

var (
	// ErrUnknownUser is returned when referencing a user ID that has not
	// been assigned.
	ErrUnknownUser = errors.New("unknown user")

	// ErrInfeasible is returned by PopulateGraph when the requested number
	// of friendships exceeds the number of distinct user pairs.
	ErrInfeasible = errors.New("not enough distinct user pairs")
)

// User describes a member of the social network.
type User struct {
	// A sequential identifier starting at 1.
	ID int

	// The user's display name.
	Name string
}

// Graph is an undirected friendship graph. Each friendship is stored as a
// pair of mirrored directed edges.
//
// Graph is not safe for concurrent mutation.
type Graph struct {
	cfg Config

	// lastID is the most recently assigned user ID.
	lastID int

	users       map[int]User
	friendships *inmem.Graph[int]

	totalFriendships int
}

// NewGraph creates an empty social graph using the provided config.
func NewGraph(cfg Config) *Graph {
	cfg.withDefaults()
	g := &Graph{cfg: cfg}
	g.reset()
	return g
}

func (g *Graph) reset() {
	g.lastID = 0
	g.users = make(map[int]User)
	g.friendships = inmem.NewGraph[int]()
	g.totalFriendships = 0
}

// AddUser creates a new user with the next sequential ID.
func (g *Graph) AddUser(name string) User {
	g.lastID++
	u := User{ID: g.lastID, Name: name}
	g.users[u.ID] = u
	g.friendships.AddVertex(u.ID)
	return u
}

// AddFriendship creates a bi-directional friendship between two users.
// Attempts to befriend oneself or to duplicate an existing friendship are
// logged and leave the graph untouched; the returned Outcome tells them
// apart. An error is only returned if either user does not exist.
func (g *Graph) AddFriendship(userID, friendID int) (Outcome, error) {
	logger := g.cfg.Logger.WithFields(logrus.Fields{
		"user_id":   userID,
		"friend_id": friendID,
	})

	if userID == friendID {
		logger.Warn("users cannot be friends with themselves")
		return SelfReference, nil
	}

	for _, id := range []int{userID, friendID} {
		if _, exists := g.users[id]; !exists {
			return 0, fmt.Errorf("add friendship %d <-> %d: user %d: %w", userID, friendID, id, ErrUnknownUser)
		}
	}

	if g.friendships.HasEdge(userID, friendID) || g.friendships.HasEdge(friendID, userID) {
		logger.Warn("friendship already exists")
		return AlreadyExists, nil
	}

	if err := g.friendships.AddEdge(userID, friendID); err != nil {
		return 0, err
	}
	if err := g.friendships.AddEdge(friendID, userID); err != nil {
		return 0, err
	}
	g.totalFriendships++

	return Created, nil
}

// PopulateGraph discards all users and friendships, creates numUsers new
// users and then links random pairs of them until the graph holds
// numUsers*avgFriendships/2 friendships (rounded down).
//
// Random picks that are not an ascending pair of users who are not yet
// friends are silently retried. The loop converges quickly as long as
// avgFriendships is comfortably below numUsers-1.
func (g *Graph) PopulateGraph(numUsers, avgFriendships int) error {
	var err error
	if numUsers < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid number of users %d", numUsers))
	}
	if avgFriendships < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid average number of friendships %d", avgFriendships))
	}
	if err != nil {
		return err
	}

	target := numUsers * avgFriendships / 2
	if maxPairs := numUsers * (numUsers - 1) / 2; target > maxPairs {
		return fmt.Errorf("populate graph with %d friendships among %d users: %w", target, numUsers, ErrInfeasible)
	}

	g.reset()
	for i := 0; i < numUsers; i++ {
		g.AddUser(fmt.Sprintf("User %d", i))
	}

	var attempts int
	for g.totalFriendships < target {
		attempts++
		userID := g.cfg.Rand.Intn(numUsers) + 1
		friendID := g.cfg.Rand.Intn(numUsers) + 1
		if userID >= friendID || g.friendships.HasEdge(userID, friendID) {
			continue
		}

		if _, err = g.AddFriendship(userID, friendID); err != nil {
			return err
		}
	}

	g.cfg.Logger.WithFields(logrus.Fields{
		"users":       numUsers,
		"friendships": g.totalFriendships,
		"attempts":    attempts,
	}).Debug("populated social graph")

	return nil
}

// GetAllSocialPaths returns the shortest friendship path from userID to
// every user in its extended network, keyed by the other user's ID. Users
// that cannot be reached are omitted. The entry for userID itself is a
// single-element path.
func (g *Graph) GetAllSocialPaths(userID int) (map[int]graph.Path[int], error) {
	if _, exists := g.users[userID]; !exists {
		return nil, fmt.Errorf("social paths for user %d: %w", userID, ErrUnknownUser)
	}

	paths := make(map[int]graph.Path[int])
	for _, id := range g.friendships.Vertices() {
		path, err := g.bfs(userID, id)
		if err != nil {
			return nil, err
		}
		if path != nil {
			paths[id] = path
		}
	}

	return paths, nil
}

func (g *Graph) bfs(start, dst int) (graph.Path[int], error) {
	return graph.ShortestPath(start, dst, g.friendships.Neighbors)
}

// User looks up a user by ID.
func (g *Graph) User(id int) (User, bool) {
	u, exists := g.users[id]
	return u, exists
}

// Users returns every user ordered by ID.
func (g *Graph) Users() []User {
	list := make([]User, 0, len(g.users))
	for _, u := range g.users {
		list = append(list, u)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// Friends returns the IDs of the friends of a user in ascending order.
func (g *Graph) Friends(userID int) ([]int, error) {
	friends, err := g.friendships.Neighbors(userID)
	if err != nil {
		return nil, fmt.Errorf("friends of user %d: %w", userID, ErrUnknownUser)
	}
	sort.Ints(friends)
	return friends, nil
}

// Friendships returns the friend list of every user keyed by user ID.
func (g *Graph) Friendships() map[int][]int {
	table := make(map[int][]int, len(g.users))
	for id := range g.users {
		// Every user has a vertex, so the lookup cannot fail.
		friends, _ := g.Friends(id)
		table[id] = friends
	}
	return table
}

// FriendshipCount returns the number of friendships in the graph.
func (g *Graph) FriendshipCount() int {
	return g.totalFriendships
}
