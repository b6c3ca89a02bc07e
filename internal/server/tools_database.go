package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jopsis/mcp-server-oci/internal/oci"
)

func (s *Server) registerDatabaseTools() {
	s.register(mcp.NewTool("list_databases",
		mcp.WithDescription("List databases in a compartment, optionally filtered to one DB system."),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
		mcp.WithString("db_system_id", mcp.Description("OCID of a DB system to restrict the listing to.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Database()
		if err != nil {
			return nil, err
		}
		return oci.ListDatabases(ctx, client, compartmentID, request.GetString("db_system_id", ""))
	})

	s.register(mcp.NewTool("get_database",
		mcp.WithDescription("Get details of a database."),
		mcp.WithString("database_id", mcp.Required(), mcp.Description("OCID of the database.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		databaseID, err := requiredString(request, "database_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Database()
		if err != nil {
			return nil, err
		}
		return oci.GetDatabase(ctx, client, databaseID)
	})

	s.register(mcp.NewTool("list_autonomous_databases",
		mcp.WithDescription("List autonomous databases in a compartment."),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Database()
		if err != nil {
			return nil, err
		}
		return oci.ListAutonomousDatabases(ctx, client, compartmentID)
	})

	s.register(mcp.NewTool("get_autonomous_database",
		mcp.WithDescription("Get details of an autonomous database, including connection strings and URLs."),
		mcp.WithString("autonomous_database_id", mcp.Required(), mcp.Description("OCID of the autonomous database.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		autonomousDatabaseID, err := requiredString(request, "autonomous_database_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Database()
		if err != nil {
			return nil, err
		}
		return oci.GetAutonomousDatabase(ctx, client, autonomousDatabaseID)
	})
}

func (s *Server) registerDbSystemTools() {
	s.register(mcp.NewTool("list_db_systems",
		mcp.WithDescription("List DB systems in a compartment."),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Database()
		if err != nil {
			return nil, err
		}
		return oci.ListDbSystems(ctx, client, compartmentID)
	})

	s.register(mcp.NewTool("get_db_system",
		mcp.WithDescription("Get details of a DB system."),
		mcp.WithString("db_system_id", mcp.Required(), mcp.Description("OCID of the DB system.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		dbSystemID, err := requiredString(request, "db_system_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Database()
		if err != nil {
			return nil, err
		}
		return oci.GetDbSystem(ctx, client, dbSystemID)
	})

	s.register(mcp.NewTool("list_db_nodes",
		mcp.WithDescription("List DB nodes in a compartment, optionally filtered to one DB system."),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment.")),
		mcp.WithString("db_system_id", mcp.Description("OCID of a DB system to restrict the listing to.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Database()
		if err != nil {
			return nil, err
		}
		return oci.ListDbNodes(ctx, client, compartmentID, request.GetString("db_system_id", ""))
	})

	s.register(mcp.NewTool("get_db_node",
		mcp.WithDescription("Get details of a DB node."),
		mcp.WithString("db_node_id", mcp.Required(), mcp.Description("OCID of the DB node.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		dbNodeID, err := requiredString(request, "db_node_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Database()
		if err != nil {
			return nil, err
		}
		return oci.GetDbNode(ctx, client, dbNodeID)
	})

	s.register(mcp.NewTool("start_db_node",
		mcp.WithDescription("Start a stopped DB node. Returns immediately without waiting for the transition to finish."),
		mcp.WithString("db_node_id", mcp.Required(), mcp.Description("OCID of the DB node.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		dbNodeID, err := requiredString(request, "db_node_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Database()
		if err != nil {
			return nil, err
		}
		return oci.StartDbNode(ctx, client, dbNodeID)
	})

	s.register(mcp.NewTool("stop_db_node",
		mcp.WithDescription("Stop a running DB node."),
		mcp.WithString("db_node_id", mcp.Required(), mcp.Description("OCID of the DB node.")),
		mcp.WithBoolean("soft", mcp.Description("Report the stop as a graceful shutdown in the result.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		dbNodeID, err := requiredString(request, "db_node_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Database()
		if err != nil {
			return nil, err
		}
		return oci.StopDbNode(ctx, client, dbNodeID, request.GetBool("soft", false))
	})

	s.register(mcp.NewTool("reboot_db_node",
		mcp.WithDescription("Reboot a DB node (power cycle)."),
		mcp.WithString("db_node_id", mcp.Required(), mcp.Description("OCID of the DB node.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		dbNodeID, err := requiredString(request, "db_node_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Database()
		if err != nil {
			return nil, err
		}
		return oci.RebootDbNode(ctx, client, dbNodeID)
	})

	s.register(mcp.NewTool("reset_db_node",
		mcp.WithDescription("Hard reset (power cycle) a DB node."),
		mcp.WithString("db_node_id", mcp.Required(), mcp.Description("OCID of the DB node.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		dbNodeID, err := requiredString(request, "db_node_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Database()
		if err != nil {
			return nil, err
		}
		return oci.ResetDbNode(ctx, client, dbNodeID)
	})

	s.register(mcp.NewTool("softreset_db_node",
		mcp.WithDescription("Gracefully reboot a DB node through the OS."),
		mcp.WithString("db_node_id", mcp.Required(), mcp.Description("OCID of the DB node.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		dbNodeID, err := requiredString(request, "db_node_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Database()
		if err != nil {
			return nil, err
		}
		return oci.SoftResetDbNode(ctx, client, dbNodeID)
	})

	s.register(mcp.NewTool("start_db_system",
		mcp.WithDescription("Start every node of a DB system. Per-node outcomes are reported individually."),
		mcp.WithString("db_system_id", mcp.Required(), mcp.Description("OCID of the DB system.")),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment holding the DB system.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		dbSystemID, err := requiredString(request, "db_system_id")
		if err != nil {
			return nil, err
		}
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Database()
		if err != nil {
			return nil, err
		}
		return oci.StartDbSystem(ctx, client, dbSystemID, compartmentID)
	})

	s.register(mcp.NewTool("stop_db_system",
		mcp.WithDescription("Stop every node of a DB system. Per-node outcomes are reported individually."),
		mcp.WithString("db_system_id", mcp.Required(), mcp.Description("OCID of the DB system.")),
		mcp.WithString("compartment_id", mcp.Required(), mcp.Description("OCID of the compartment holding the DB system.")),
		mcp.WithBoolean("soft", mcp.Description("Report the stop as a graceful shutdown in the result.")),
	), true, func(ctx context.Context, request mcp.CallToolRequest) (any, error) {
		dbSystemID, err := requiredString(request, "db_system_id")
		if err != nil {
			return nil, err
		}
		compartmentID, err := requiredString(request, "compartment_id")
		if err != nil {
			return nil, err
		}
		client, err := s.sess.Database()
		if err != nil {
			return nil, err
		}
		return oci.StopDbSystem(ctx, client, dbSystemID, compartmentID, request.GetBool("soft", false))
	})
}
